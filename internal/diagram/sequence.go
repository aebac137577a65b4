// Package diagram emits a Mermaid sequenceDiagram DSL string from a
// resolution.Resolution tree: one "->>" call arrow per offer, grouped
// into a green "rect" block for satisfying offers and a red one for
// unsatisfying offers, recursing into each offer's resolved conditions.
package diagram

import (
	"fmt"
	"strings"

	"promisetracker/internal/resolution"
)

const (
	satisfiedRect   = "rect rgb(0,255,0)"
	unsatisfiedRect = "rect rgb(255,0,0)"
	blockEnd        = "end"
	indent          = "    "
)

// Sequence builds the complete Mermaid sequenceDiagram DSL: component is
// the caller requesting behavior, and r is its resolution.
func Sequence(component, behavior string, r resolution.Resolution) string {
	lines := generateLines(component, behavior, r.SatisfyingOffers, r.UnsatisfyingOffers)

	result := []string{"sequenceDiagram"}
	for _, l := range lines {
		result = append(result, indent+l)
	}
	return strings.Join(result, "\n")
}

func generateLines(component, behavior string, satisfied, unsatisfied []resolution.Offer) []string {
	var ret []string

	if len(satisfied) > 0 {
		ret = append(ret, satisfiedRect)
		ret = append(ret, offerLines(component, behavior, satisfied)...)
		ret = append(ret, blockEnd)
	}

	if len(unsatisfied) > 0 {
		ret = append(ret, unsatisfiedRect)
		ret = append(ret, offerLines(component, behavior, unsatisfied)...)
		ret = append(ret, blockEnd)
	}

	if len(satisfied) == 0 && len(unsatisfied) == 0 {
		ret = append(ret, unsatisfiedRect)
		ret = append(ret, fmt.Sprintf("%s -X %s: %s", component, component, behavior))
		ret = append(ret, blockEnd)
	}

	return ret
}

func offerLines(component, behavior string, offers []resolution.Offer) []string {
	var ret []string
	for _, offer := range offers {
		ret = append(ret, fmt.Sprintf("%s ->> %s: %s", component, offer.AgentName, behavior))
		for _, condition := range offer.ResolvedConditions {
			childLines := generateLines(offer.AgentName, condition.BehaviorName, condition.SatisfyingOffers, condition.UnsatisfyingOffers)
			for _, l := range childLines {
				ret = append(ret, indent+l)
			}
		}
	}
	return ret
}
