package promise

import "sort"

// Agent is a named actor that provides (promises) behaviors and wants
// (requests) behaviors. Conditions on a want are never consulted by the
// resolver; conditions belong to provides.
type Agent struct {
	Name     string     `yaml:"name"`
	Provides []Behavior `yaml:"provides,omitempty"`
	Wants    []Behavior `yaml:"wants,omitempty"`
}

// NewAgent builds an empty Agent.
func NewAgent(name string) Agent {
	return Agent{Name: name}
}

// WithProvides returns a copy of a with Provides replaced.
func (a Agent) WithProvides(provides []Behavior) Agent {
	a.Provides = append([]Behavior(nil), provides...)
	return a
}

// WithWants returns a copy of a with Wants replaced.
func (a Agent) WithWants(wants []Behavior) Agent {
	a.Wants = append([]Behavior(nil), wants...)
	return a
}

// AddProvide appends p to a's provides in place.
func (a *Agent) AddProvide(p Behavior) {
	a.Provides = append(a.Provides, p)
}

// AddWant appends w to a's wants in place.
func (a *Agent) AddWant(w Behavior) {
	a.Wants = append(a.Wants, w)
}

// IsWantsEmpty reports whether a has no wants.
func (a Agent) IsWantsEmpty() bool {
	return len(a.Wants) == 0
}

// HasBehavior reports whether n is provided, wanted, or named as a
// condition of any provide.
func (a Agent) HasBehavior(n string) bool {
	for _, p := range a.Provides {
		if p.HasBehavior(n) {
			return true
		}
	}
	for _, w := range a.Wants {
		if w.Name == n {
			return true
		}
	}
	return false
}

// GetConditions returns the set of every condition name across all
// provides.
func (a Agent) GetConditions() map[string]struct{} {
	ret := make(map[string]struct{})
	for _, p := range a.Provides {
		for _, c := range p.Conditions {
			ret[c] = struct{}{}
		}
	}
	return ret
}

// GetWants returns the set of want names.
func (a Agent) GetWants() map[string]struct{} {
	ret := make(map[string]struct{})
	for _, w := range a.Wants {
		ret[w.Name] = struct{}{}
	}
	return ret
}

// GetProvides returns every provide named behaviorName, or nil if none.
func (a Agent) GetProvides(behaviorName string) []Behavior {
	var ret []Behavior
	for _, p := range a.Provides {
		if p.Name == behaviorName {
			ret = append(ret, p)
		}
	}
	return ret
}

// GetBehaviors returns the set of every name this agent is party to:
// provide names, their conditions, and want names.
func (a Agent) GetBehaviors() map[string]struct{} {
	ret := make(map[string]struct{})
	for _, p := range a.Provides {
		ret[p.Name] = struct{}{}
		for _, c := range p.Conditions {
			ret[c] = struct{}{}
		}
	}
	for _, w := range a.Wants {
		ret[w.Name] = struct{}{}
	}
	return ret
}

// Merge appends every Behavior from other's provides and wants that is
// not already present (structural equality), preserving insertion order.
func (a *Agent) Merge(other Agent) {
	for _, p := range other.Provides {
		if !containsBehavior(a.Provides, p) {
			a.Provides = append(a.Provides, p)
		}
	}
	for _, w := range other.Wants {
		if !containsBehavior(a.Wants, w) {
			a.Wants = append(a.Wants, w)
		}
	}
}

func containsBehavior(list []Behavior, b Behavior) bool {
	for _, x := range list {
		if x.Equal(b) {
			return true
		}
	}
	return false
}

// reductionBudgetMultiplier scales the rewrite budget of Reduce: a single
// queued provide may be rewritten len(a.Provides) times this value before
// it is treated as a cycle.
const reductionBudgetMultiplier = 1

// Reduce eliminates provides whose conditions are themselves internally
// provided, by inlining the conditions of the first matching internal
// provider. See spec §4.2 for the exact algorithm; it is reproduced here
// verbatim because the rewrite order is observable (it affects instance
// tagging and resolution shape downstream).
func (a *Agent) Reduce() error {
	internal := make(map[string]struct{}, len(a.Provides))
	for _, p := range a.Provides {
		internal[p.Name] = struct{}{}
	}

	type queued struct {
		b       Behavior
		rewrite int
	}

	budget := len(a.Provides) * reductionBudgetMultiplier
	if budget == 0 {
		budget = 1
	}

	queue := make([]queued, 0, len(a.Provides))
	for _, p := range a.Provides {
		queue = append(queue, queued{b: p})
	}

	var emitted []Behavior
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]

		if head.b.IsUnconditional() || head.b.HasNoneOf(internal) {
			emitted = append(emitted, head.b)
			continue
		}

		if head.rewrite >= budget {
			return &ReductionCycleError{AgentName: a.Name, ProvideName: head.b.Name}
		}

		var newConditions []string
		for _, c := range head.b.Conditions {
			if _, ok := internal[c]; !ok {
				newConditions = append(newConditions, c)
				continue
			}
			provider := firstProvideNamed(a.Provides, c)
			if provider == nil {
				// Internal name with no matching provide left (should not
				// happen given internal is built from Provides, but guard
				// anyway): keep as-is.
				newConditions = append(newConditions, c)
				continue
			}
			newConditions = append(newConditions, provider.Conditions...)
		}
		rewritten := head.b.WithConditions(newConditions)
		queue = append(queue, queued{b: rewritten, rewrite: head.rewrite + 1})
	}

	sort.SliceStable(emitted, func(i, j int) bool {
		return emitted[i].sortKey() < emitted[j].sortKey()
	})
	a.Provides = emitted
	return nil
}

func firstProvideNamed(provides []Behavior, name string) *Behavior {
	for i := range provides {
		if provides[i].Name == name {
			return &provides[i]
		}
	}
	return nil
}

// MakeInstance returns a new Agent named instanceName whose provides are
// each tagged via Behavior.MakeInstance(providesTag, conditionsTag) and
// whose wants are copied verbatim.
func (a Agent) MakeInstance(instanceName, providesTag, conditionsTag string) Agent {
	out := Agent{Name: instanceName}
	if len(a.Provides) > 0 {
		out.Provides = make([]Behavior, len(a.Provides))
		for i, p := range a.Provides {
			out.Provides[i] = p.MakeInstance(providesTag, conditionsTag)
		}
	}
	out.Wants = append([]Behavior(nil), a.Wants...)
	return out
}

// Equal reports structural equality: same name and identical provides and
// wants lists (order-sensitive, matching the round-trip identity used for
// dedup in Tracker.AddAgent).
func (a Agent) Equal(other Agent) bool {
	if a.Name != other.Name {
		return false
	}
	if len(a.Provides) != len(other.Provides) || len(a.Wants) != len(other.Wants) {
		return false
	}
	for i := range a.Provides {
		if !a.Provides[i].Equal(other.Provides[i]) {
			return false
		}
	}
	for i := range a.Wants {
		if !a.Wants[i].Equal(other.Wants[i]) {
			return false
		}
	}
	return true
}
