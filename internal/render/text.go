// Package render turns a resolution.Resolution tree into human-readable
// text, in two layouts: full (one line per syntactic element, indented by
// depth) and compressed (siblings share a left column, so a resolved
// chain reads as one line). Both layouts have a colorized variant built
// on lipgloss: green for satisfied, red for unsatisfied.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"promisetracker/internal/resolution"
)

var (
	satisfiedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	unsatisfiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

func colorFor(satisfied bool) lipgloss.Style {
	if satisfied {
		return satisfiedStyle
	}
	return unsatisfiedStyle
}

// ToStrings renders r in full layout: one line per Resolution/Offer,
// indented two spaces per nesting depth, uncolored.
func ToStrings(r resolution.Resolution) []string {
	return toFullLines(r, false)
}

// ToColorizedStrings renders r in full layout with ANSI color: the arrow
// is green for satisfying offers and red for unsatisfying ones; a
// behavior with no offers at all renders as two red lines, "{behavior}"
// followed by "  |-> ?".
func ToColorizedStrings(r resolution.Resolution) []string {
	return toFullLines(r, true)
}

func toFullLines(r resolution.Resolution, color bool) []string {
	if r.HasNoOffers() {
		behavior := r.BehaviorName
		arrow := "|->"
		mark := "?"
		if color {
			behavior = unsatisfiedStyle.Render(behavior)
			arrow = unsatisfiedStyle.Render(arrow)
			mark = unsatisfiedStyle.Render(mark)
		}
		return []string{behavior, "  " + arrow + " " + mark}
	}

	behavior := r.BehaviorName
	if color {
		behavior = colorFor(r.IsSatisfied()).Render(behavior)
	}
	ret := []string{behavior}

	appendOffers := func(offers []resolution.Offer, satisfied bool) {
		arrow := "|->"
		if color {
			arrow = colorFor(satisfied).Render(arrow)
		}
		for _, offer := range offers {
			lines := offerFullLines(offer, color)
			lines[0] = "  " + arrow + " " + lines[0]
			for i := 1; i < len(lines); i++ {
				lines[i] = "  " + lines[i]
			}
			ret = append(ret, lines...)
		}
	}
	appendOffers(r.SatisfyingOffers, true)
	appendOffers(r.UnsatisfyingOffers, false)
	return ret
}

func offerFullLines(o resolution.Offer, color bool) []string {
	if len(o.ResolvedConditions) == 0 {
		name := o.AgentName
		if color {
			name = satisfiedStyle.Render(name)
		}
		return []string{name}
	}
	satisfied := o.IsSatisfied()
	name := o.AgentName
	if color {
		name = colorFor(satisfied).Render(name)
	}
	ret := []string{name}
	for _, cond := range o.ResolvedConditions {
		lines := toFullLines(cond, color)
		arrow := "&->"
		if color {
			arrow = colorFor(cond.IsSatisfied()).Render(arrow)
		}
		lines[0] = "  " + arrow + " " + lines[0]
		for i := 1; i < len(lines); i++ {
			lines[i] = "  " + lines[i]
		}
		ret = append(ret, lines...)
	}
	return ret
}

// ToStringsCompressed renders r in compressed layout: a parent and its
// first-listed child share one line, later siblings replace the shared
// prefix with spaces of equal display width. useColor selects whether the
// "|->"/"&->" arrows are colorized (green if satisfied, red otherwise);
// the behavior/agent names themselves are never colorized in this layout
// (matching the original's to_strings_compressed, which only colors the
// arrows).
func ToStringsCompressed(r resolution.Resolution, useColor bool) []string {
	if r.HasNoOffers() {
		arrow := "|->"
		if useColor {
			arrow = unsatisfiedStyle.Render(arrow)
		}
		return []string{r.BehaviorName + " " + arrow + " ?"}
	}

	var ret []string
	appendOffers := func(offers []resolution.Offer, satisfied bool) {
		arrow := "|->"
		if useColor {
			arrow = colorFor(satisfied).Render(arrow)
		}
		for _, offer := range offers {
			children := offerStringsCompressed(offer, useColor)
			children[0] = strings.Repeat(" ", len(r.BehaviorName)) + " " + arrow + " " + children[0]
			for i := 1; i < len(children); i++ {
				children[i] = strings.Repeat(" ", len(r.BehaviorName)+5) + children[i]
			}
			ret = append(ret, children...)
		}
	}
	appendOffers(r.SatisfyingOffers, true)
	appendOffers(r.UnsatisfyingOffers, false)
	ret[0] = r.BehaviorName + ret[0][len(r.BehaviorName):]
	return ret
}

// offerStringsCompressed mirrors the original's Offer::to_strings_compressed
// exactly, including its one quirk: the "&->" condition separator is
// always plain, never colorized, even when useColor selects colored "|->"
// arrows for the nested Resolutions.
func offerStringsCompressed(o resolution.Offer, useColor bool) []string {
	if len(o.ResolvedConditions) == 0 {
		return []string{o.AgentName}
	}
	var ret []string
	for _, cond := range o.ResolvedConditions {
		children := ToStringsCompressed(cond, useColor)
		children[0] = strings.Repeat(" ", len(o.AgentName)) + " &-> " + children[0]
		for i := 1; i < len(children); i++ {
			children[i] = strings.Repeat(" ", len(o.AgentName)+5) + children[i]
		}
		ret = append(ret, children...)
	}
	ret[0] = o.AgentName + ret[0][len(o.AgentName):]
	return ret
}

// ToColorizedCompressedStrings renders r in compressed layout with both
// the arrows and the behavior/agent names colorized: green when satisfied,
// red otherwise, matching the original's to_colorized_compressed_strings.
func ToColorizedCompressedStrings(r resolution.Resolution) []string {
	if r.HasNoOffers() {
		return []string{
			unsatisfiedStyle.Render(r.BehaviorName) + " " +
				unsatisfiedStyle.Render("|->") + " " +
				unsatisfiedStyle.Render("?"),
		}
	}

	style := colorFor(r.IsSatisfied())
	colorizedBehavior := style.Render(r.BehaviorName)
	spacerBehavior := style.Render(strings.Repeat(" ", len(r.BehaviorName)))

	var ret []string
	appendOffers := func(offers []resolution.Offer, satisfied bool) {
		arrow := colorFor(satisfied).Render("|->")
		for _, offer := range offers {
			lines := offerColorizedCompressedLines(offer)
			prefix := spacerBehavior
			if len(ret) == 0 {
				prefix = colorizedBehavior
			}
			lines[0] = prefix + " " + arrow + " " + lines[0]
			spacerOffer := colorFor(satisfied).Render("   ")
			for i := 1; i < len(lines); i++ {
				lines[i] = spacerBehavior + " " + spacerOffer + " " + lines[i]
			}
			ret = append(ret, lines...)
		}
	}
	appendOffers(r.SatisfyingOffers, true)
	appendOffers(r.UnsatisfyingOffers, false)
	return ret
}

func offerColorizedCompressedLines(o resolution.Offer) []string {
	if len(o.ResolvedConditions) == 0 {
		return []string{satisfiedStyle.Render(o.AgentName)}
	}
	satisfied := o.IsSatisfied()
	style := colorFor(satisfied)
	colorizedAgent := style.Render(o.AgentName)
	spacerAgent := style.Render(strings.Repeat(" ", len(o.AgentName)))

	var ret []string
	for _, cond := range o.ResolvedConditions {
		condStyle := colorFor(cond.IsSatisfied())
		colorizedCondition := condStyle.Render("&->")
		spacerCondition := condStyle.Render("   ")

		lines := ToColorizedCompressedStrings(cond)
		prefix := spacerAgent
		if len(ret) == 0 {
			prefix = colorizedAgent
		}
		lines[0] = prefix + " " + colorizedCondition + " " + lines[0]
		for i := 1; i < len(lines); i++ {
			lines[i] = spacerAgent + " " + spacerCondition + " " + lines[i]
		}
		ret = append(ret, lines...)
	}
	return ret
}
