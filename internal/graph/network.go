// Package graph builds force-directed graph data — nodes and links —
// describing the promise relationships held by a tracker.Tracker, for
// rendering in a front-end visualization.
package graph

import (
	"context"
	"sort"

	"promisetracker/internal/resolution"
	"promisetracker/internal/tracker"
)

// NodeType distinguishes a component (agent) node from a behavior node.
type NodeType string

const (
	NodeComponent NodeType = "component"
	NodeBehavior  NodeType = "behavior"
)

// LinkType names the kind of relationship a Link represents.
type LinkType string

const (
	LinkWants    LinkType = "wants"
	LinkProvides LinkType = "provides"
	LinkNeeds    LinkType = "needs"
)

// Node is a component or behavior in the graph.
type Node struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Type      NodeType `json:"type"`
	Satisfied bool     `json:"satisfied"`
}

// Link is a directed relationship between two Nodes.
type Link struct {
	Source    string   `json:"source"`
	Target    string   `json:"target"`
	Type      LinkType `json:"type"`
	Satisfied bool     `json:"satisfied"`
}

// Data is the complete graph: every Node and Link discovered while
// walking a Tracker's working agents and their resolutions.
type Data struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// IsEmpty reports whether the graph has no nodes.
func (d Data) IsEmpty() bool {
	return len(d.Nodes) == 0
}

type builder struct {
	nodes   []Node
	links   []Link
	nodeIdx map[string]int
}

func newBuilder() *builder {
	return &builder{nodeIdx: map[string]int{}}
}

func (b *builder) getOrCreateNode(id string, nodeType NodeType) int {
	if idx, ok := b.nodeIdx[id]; ok {
		return idx
	}
	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{ID: id, Label: id, Type: nodeType, Satisfied: true})
	b.nodeIdx[id] = idx
	return idx
}

func (b *builder) linkExists(source, target string, linkType LinkType) bool {
	return b.findLink(source, target, linkType) >= 0
}

func (b *builder) findLink(source, target string, linkType LinkType) int {
	for i, l := range b.links {
		if l.Source == source && l.Target == target && l.Type == linkType {
			return i
		}
	}
	return -1
}

// processResolution walks a Resolution's offers and, once done, marks its
// own behavior node unsatisfied if it has no offers at all, or only
// unsatisfying ones.
func (b *builder) processResolution(behaviorName string, r resolution.Resolution) {
	for _, offer := range r.SatisfyingOffers {
		b.processOffer(behaviorName, offer, true)
	}
	for _, offer := range r.UnsatisfyingOffers {
		b.processOffer(behaviorName, offer, false)
	}

	if idx, ok := b.nodeIdx[behaviorName]; ok {
		if len(r.SatisfyingOffers) == 0 {
			b.nodes[idx].Satisfied = false
		}
	}
}

func (b *builder) processOffer(behaviorName string, offer resolution.Offer, isSatisfied bool) {
	providerName := offer.AgentName
	b.getOrCreateNode(providerName, NodeComponent)

	if !b.linkExists(behaviorName, providerName, LinkProvides) {
		b.links = append(b.links, Link{
			Source: behaviorName, Target: providerName,
			Type: LinkProvides, Satisfied: isSatisfied,
		})
	}

	for _, condition := range offer.ResolvedConditions {
		conditionName := condition.BehaviorName
		b.getOrCreateNode(conditionName, NodeBehavior)

		conditionSatisfied := len(condition.SatisfyingOffers) > 0

		if idx := b.findLink(providerName, conditionName, LinkNeeds); idx >= 0 {
			b.links[idx].Satisfied = conditionSatisfied
		} else {
			b.links = append(b.links, Link{
				Source: providerName, Target: conditionName,
				Type: LinkNeeds, Satisfied: conditionSatisfied,
			})
		}

		b.processResolution(conditionName, condition)
	}
}

func (b *builder) build() Data {
	return Data{Nodes: b.nodes, Links: b.links}
}

// Network builds a Data graph from t: every working agent becomes a
// component node, every want becomes a behavior node with a "wants" link
// to it, and resolving each want discovers the providers ("provides"
// links) and their own conditions ("needs" links), recursively.
//
// Every distinct wanted behavior across the whole tracker is resolved
// once via tracker.ResolveAll (spec §4.8: the graph emitter resolves its
// wants concurrently rather than one at a time), and the builder walk
// below — which mutates shared node/link state and so stays
// single-threaded — only ever reads from the resulting map.
func Network(t *tracker.Tracker) Data {
	if t.IsEmpty() {
		return Data{}
	}

	agentNames := t.GetWorkingAgentNames()
	if len(agentNames) == 0 {
		return Data{}
	}

	agentWants := make(map[string][]string, len(agentNames))
	seen := make(map[string]struct{})
	var wantNames []string
	for _, agentName := range agentNames {
		wants, err := t.GetAgentWants(agentName)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(wants))
		for w := range wants {
			names = append(names, w)
		}
		sort.Strings(names)
		agentWants[agentName] = names
		for _, w := range names {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				wantNames = append(wantNames, w)
			}
		}
	}

	resolved := make(map[string]resolution.Resolution, len(wantNames))
	if len(wantNames) > 0 {
		if results, err := tracker.ResolveAll(context.Background(), t, wantNames); err == nil {
			for i, name := range wantNames {
				resolved[name] = results[i]
			}
		}
	}

	b := newBuilder()

	for _, agentName := range agentNames {
		b.getOrCreateNode(agentName, NodeComponent)

		for _, wantBehavior := range agentWants[agentName] {
			b.getOrCreateNode(wantBehavior, NodeBehavior)

			if !b.linkExists(agentName, wantBehavior, LinkWants) {
				b.links = append(b.links, Link{
					Source: agentName, Target: wantBehavior,
					Type: LinkWants, Satisfied: true,
				})
			}

			r := resolved[wantBehavior]
			hasSatisfiedProviders := len(r.SatisfyingOffers) > 0

			if idx := b.findLink(agentName, wantBehavior, LinkWants); idx >= 0 {
				b.links[idx].Satisfied = hasSatisfiedProviders
			}
			if !hasSatisfiedProviders {
				if idx, ok := b.nodeIdx[wantBehavior]; ok {
					b.nodes[idx].Satisfied = false
				}
			}

			b.processResolution(wantBehavior, r)
		}
	}

	return b.build()
}
