package tracker

import (
	"go.uber.org/zap"

	"promisetracker/internal/ptlog"
	"promisetracker/internal/resolution"
)

// Resolve answers "who (if anyone) can provide behaviorName, and under
// what resolved sub-conditions" by walking every working agent's provides
// of that name. Conditions on a provide are resolved recursively; an
// offer is satisfying only if every resolved condition is itself
// satisfied (spec §4.4).
//
// Resolve is safe to call concurrently with other Resolve calls (see
// concurrent.go); it never mutates the Tracker and the returned tree
// borrows nothing from it.
func (t *Tracker) Resolve(behaviorName string) resolution.Resolution {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r := t.resolve(behaviorName, map[string]struct{}{})
	ptlog.Get(ptlog.CategoryResolve).Debug("resolved behavior",
		zap.String("behavior_name", behaviorName),
		zap.Bool("satisfied", r.IsSatisfied()),
	)
	return r
}

// resolve carries the resolution stack: the set of behavior names
// currently being resolved along the path from the root call. A behavior
// already on the stack means the graph cycles back on itself; that child
// resolves to an empty (unresolved) Resolution rather than recursing
// forever (spec §4.4, the resolution-stack termination guard).
func (t *Tracker) resolve(behaviorName string, stack map[string]struct{}) resolution.Resolution {
	r := resolution.New(behaviorName)

	if _, onStack := stack[behaviorName]; onStack {
		return r
	}
	nextStack := make(map[string]struct{}, len(stack)+1)
	for k := range stack {
		nextStack[k] = struct{}{}
	}
	nextStack[behaviorName] = struct{}{}

	agentNames := t.getWorkingAgentNamesLocked()

	for _, agentName := range agentNames {
		variants, ok := t.workingAgents[agentName]
		if !ok {
			continue
		}
		for _, variant := range variants {
			for _, b := range variant.GetProvides(behaviorName) {
				if b.IsUnconditional() {
					r = r.AddSatisfyingOffer(resolution.NewOffer(agentName))
					continue
				}

				resolvedConditions := make([]resolution.Resolution, 0, len(b.Conditions))
				for _, c := range b.Conditions {
					resolvedConditions = append(resolvedConditions, t.resolve(c, nextStack))
				}

				offer := resolution.NewConditionalOffer(agentName, resolvedConditions)
				if offer.IsSatisfied() {
					r = r.AddSatisfyingOffer(offer)
				} else {
					r = r.AddUnsatisfyingOffer(offer)
				}
			}
		}
	}

	return r
}
