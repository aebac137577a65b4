package promise

// Instance is a namespaced copy of a super-agent's merged behavior set,
// tagged by ProvidesTag/ConditionsTag, with its own extra provides/wants
// that "reach outside" the instance namespace (they are appended verbatim,
// not retagged).
type Instance struct {
	Name          string     `yaml:"name"`
	Comment       string     `yaml:"comment,omitempty"`
	ProvidesTag   string     `yaml:"providesTag"`
	ConditionsTag string     `yaml:"conditionsTag"`
	Provides      []Behavior `yaml:"provides,omitempty"`
	Wants         []Behavior `yaml:"wants,omitempty"`
}

// SuperAgent is a named aggregation of member agent names, optionally
// parameterized by Instances. Expansion into working agents happens in
// the Tracker, not here; SuperAgent itself is pure data plus builders.
type SuperAgent struct {
	Name      string     `yaml:"name"`
	Agents    []string   `yaml:"agents,omitempty"`
	Instances []Instance `yaml:"instances,omitempty"`
}

// NewSuperAgent builds an empty SuperAgent.
func NewSuperAgent(name string) SuperAgent {
	return SuperAgent{Name: name}
}

// WithAgent returns a copy of sa with agentName appended to its members.
func (sa SuperAgent) WithAgent(agentName string) SuperAgent {
	sa.Agents = append(append([]string(nil), sa.Agents...), agentName)
	return sa
}

// WithInstance returns a copy of sa with an additional instance appended.
func (sa SuperAgent) WithInstance(name, comment, providesTag, conditionsTag string, provides, wants []Behavior) SuperAgent {
	sa.Instances = append(append([]Instance(nil), sa.Instances...), Instance{
		Name:          name,
		Comment:       comment,
		ProvidesTag:   providesTag,
		ConditionsTag: conditionsTag,
		Provides:      provides,
		Wants:         wants,
	})
	return sa
}

// GetAgentNames returns the set of member agent names.
func (sa SuperAgent) GetAgentNames() map[string]struct{} {
	ret := make(map[string]struct{}, len(sa.Agents))
	for _, a := range sa.Agents {
		ret[a] = struct{}{}
	}
	return ret
}

// Equal reports structural equality between two super-agents.
func (sa SuperAgent) Equal(other SuperAgent) bool {
	if sa.Name != other.Name {
		return false
	}
	if len(sa.Agents) != len(other.Agents) || len(sa.Instances) != len(other.Instances) {
		return false
	}
	for i := range sa.Agents {
		if sa.Agents[i] != other.Agents[i] {
			return false
		}
	}
	for i := range sa.Instances {
		if !sa.Instances[i].equal(other.Instances[i]) {
			return false
		}
	}
	return true
}

func (i Instance) equal(other Instance) bool {
	if i.Name != other.Name || i.ProvidesTag != other.ProvidesTag || i.ConditionsTag != other.ConditionsTag {
		return false
	}
	if len(i.Provides) != len(other.Provides) || len(i.Wants) != len(other.Wants) {
		return false
	}
	for k := range i.Provides {
		if !i.Provides[k].Equal(other.Provides[k]) {
			return false
		}
	}
	for k := range i.Wants {
		if !i.Wants[k].Equal(other.Wants[k]) {
			return false
		}
	}
	return true
}
