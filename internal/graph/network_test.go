package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promisetracker/internal/promise"
	"promisetracker/internal/tracker"
)

func agentWithProvide(name string, b promise.Behavior) promise.Agent {
	a := promise.NewAgent(name)
	a.AddProvide(b)
	return a
}

func findLink(links []Link, linkType LinkType) *Link {
	for i := range links {
		if links[i].Type == linkType {
			return &links[i]
		}
	}
	return nil
}

func findNode(nodes []Node, id string) *Node {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
	}
	return nil
}

func TestNetworkEmptyTracker(t *testing.T) {
	tr := tracker.New()
	g := Network(tr)
	assert.True(t, g.IsEmpty())
}

func TestNetworkSimpleAgent(t *testing.T) {
	tr := tracker.New()
	require.NoError(t, tr.AddAgent(agentWithProvide("a1", promise.NewBehavior("b1"))))

	g := Network(tr)

	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "a1", g.Nodes[0].ID)
	assert.Equal(t, NodeComponent, g.Nodes[0].Type)
}

func TestNetworkAgentWithWants(t *testing.T) {
	tr := tracker.New()

	a1 := promise.NewAgent("a1")
	a1.AddWant(promise.NewBehavior("b1"))
	require.NoError(t, tr.AddAgent(a1))
	require.NoError(t, tr.AddAgent(agentWithProvide("a2", promise.NewBehavior("b1"))))

	g := Network(tr)

	// a1, a2 (components), b1 (behavior)
	assert.Len(t, g.Nodes, 3)
	assert.GreaterOrEqual(t, len(g.Links), 2)

	wantsLink := findLink(g.Links, LinkWants)
	require.NotNil(t, wantsLink)
	assert.True(t, wantsLink.Satisfied)
}

func TestNetworkUnsatisfiedWant(t *testing.T) {
	tr := tracker.New()

	a1 := promise.NewAgent("a1")
	a1.AddWant(promise.NewBehavior("b1"))
	require.NoError(t, tr.AddAgent(a1))

	g := Network(tr)

	assert.Len(t, g.Nodes, 2)

	wantsLink := findLink(g.Links, LinkWants)
	require.NotNil(t, wantsLink)
	assert.False(t, wantsLink.Satisfied)

	behaviorNode := findNode(g.Nodes, "b1")
	require.NotNil(t, behaviorNode)
	assert.False(t, behaviorNode.Satisfied)
}
