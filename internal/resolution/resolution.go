// Package resolution holds the immutable, structurally-compared result
// tree produced by the resolver (internal/tracker) and consumed by the
// presentation packages (internal/render, internal/diagram,
// internal/graph). It has no knowledge of Agents, Behaviors, or the
// Tracker that produces these trees.
package resolution

// Offer is one agent's claim to provide a behavior: "agent_name can
// provide this behavior under these resolved sub-conditions." An empty
// ResolvedConditions means the underlying provide was unconditional.
type Offer struct {
	AgentName          string
	ResolvedConditions []Resolution
}

// NewOffer builds an unconditional Offer.
func NewOffer(agentName string) Offer {
	return Offer{AgentName: agentName}
}

// NewConditionalOffer builds an Offer whose satisfaction depends on the
// given resolved conditions, in the same order as the provide's
// condition list.
func NewConditionalOffer(agentName string, resolvedConditions []Resolution) Offer {
	return Offer{AgentName: agentName, ResolvedConditions: resolvedConditions}
}

// IsSatisfied reports whether every resolved condition is itself
// satisfied (vacuously true when there are none).
func (o Offer) IsSatisfied() bool {
	for _, c := range o.ResolvedConditions {
		if !c.IsSatisfied() {
			return false
		}
	}
	return true
}

// Equal reports equality: same agent name, and the resolved-condition
// lists are equal as sets (order-insensitive).
func (o Offer) Equal(other Offer) bool {
	if o.AgentName != other.AgentName {
		return false
	}
	return resolutionsSetEqual(o.ResolvedConditions, other.ResolvedConditions)
}

// Resolution is the full answer for one behavior: every offer that
// satisfies it, and every offer that would if its conditions were met.
type Resolution struct {
	BehaviorName        string
	SatisfyingOffers    []Offer
	UnsatisfyingOffers  []Offer
}

// New builds an empty Resolution (no offers at all) for behaviorName.
func New(behaviorName string) Resolution {
	return Resolution{BehaviorName: behaviorName}
}

// WithSatisfying returns a copy of r with offers appended to
// SatisfyingOffers.
func (r Resolution) WithSatisfying(offers ...Offer) Resolution {
	r.SatisfyingOffers = append(append([]Offer(nil), r.SatisfyingOffers...), offers...)
	return r
}

// AddSatisfyingOffer returns a copy of r with offer appended to
// SatisfyingOffers.
func (r Resolution) AddSatisfyingOffer(offer Offer) Resolution {
	return r.WithSatisfying(offer)
}

// AddUnsatisfyingOffer returns a copy of r with offer appended to
// UnsatisfyingOffers.
func (r Resolution) AddUnsatisfyingOffer(offer Offer) Resolution {
	r.UnsatisfyingOffers = append(append([]Offer(nil), r.UnsatisfyingOffers...), offer)
	return r
}

// IsSatisfied reports whether this behavior has at least one satisfying
// offer.
func (r Resolution) IsSatisfied() bool {
	return len(r.SatisfyingOffers) > 0
}

// HasNoOffers reports whether no agent offered this behavior at all
// (distinct from "offered but unsatisfied").
func (r Resolution) HasNoOffers() bool {
	return len(r.SatisfyingOffers) == 0 && len(r.UnsatisfyingOffers) == 0
}

// Equal reports equality: same behavior name, and both offer lists equal
// as sets (order-insensitive), matching spec §3.
func (r Resolution) Equal(other Resolution) bool {
	if r.BehaviorName != other.BehaviorName {
		return false
	}
	if len(r.SatisfyingOffers) != len(other.SatisfyingOffers) {
		return false
	}
	if len(r.UnsatisfyingOffers) != len(other.UnsatisfyingOffers) {
		return false
	}
	return offersSetEqual(r.SatisfyingOffers, other.SatisfyingOffers) &&
		offersSetEqual(r.UnsatisfyingOffers, other.UnsatisfyingOffers)
}

func offersSetEqual(a, b []Offer) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if used[i] {
				continue
			}
			if x.Equal(y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func resolutionsSetEqual(a, b []Resolution) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if used[i] {
				continue
			}
			if x.Equal(y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
