package promise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentSimple(t *testing.T) {
	a := NewAgent("foo")
	assert.Equal(t, "foo", a.Name)
	assert.True(t, a.IsWantsEmpty())

	a.AddWant(NewBehavior("w1"))
	assert.Equal(t, []Behavior{NewBehavior("w1")}, a.Wants)
	assert.Equal(t, map[string]struct{}{"w1": {}}, a.GetWants())
	assert.False(t, a.IsWantsEmpty())

	assert.Empty(t, a.Provides)
	a.AddProvide(NewBehavior("p1"))
	a.AddProvide(NewBehaviorWithConditions("p2", []string{"c1", "c2"}))

	assert.True(t, a.HasBehavior("p1"))
	assert.True(t, a.HasBehavior("p2"))
	assert.True(t, a.HasBehavior("c1"))
	assert.True(t, a.HasBehavior("c2"))
	assert.False(t, a.HasBehavior("c3"))
	assert.True(t, a.HasBehavior("w1"))
	assert.False(t, a.HasBehavior("w2"))

	assert.Equal(t, []Behavior{
		NewBehavior("p1"),
		NewBehaviorWithConditions("p2", []string{"c1", "c2"}),
	}, a.Provides)
}

func TestAgentSimpleFromYAML(t *testing.T) {
	item, err := ParseItem([]byte(`kind: Agent
name: foo
provides:
  - name: p2
    conditions:
      - c2
      - c1
  - name: p1
wants:
  - name: w2
  - name: w1
`))
	require.NoError(t, err)
	a := item.Agent
	assert.Equal(t, "foo", a.Name)
	assert.Equal(t, []Behavior{
		NewBehaviorWithConditions("p2", []string{"c2", "c1"}),
		NewBehavior("p1"),
	}, a.Provides)
	assert.Equal(t, []Behavior{
		NewBehavior("w2"),
		NewBehavior("w1"),
	}, a.Wants)
}

func TestAgentGetConditions(t *testing.T) {
	item, err := ParseItem([]byte(`kind: Agent
name: foo
provides:
  - name: b3
    conditions:
      - c3
  - name: b1
    conditions:
      - c2
      - c1
  - name: b2
    conditions:
      - c4
  - name: b2
    conditions:
      - c2
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"c1": {}, "c2": {}, "c3": {}, "c4": {},
	}, item.Agent.GetConditions())
}

func TestAgentGetBehaviors(t *testing.T) {
	item, err := ParseItem([]byte(`kind: Agent
name: foo
provides:
  - name: b3
    conditions:
      - c3
  - name: b1
    conditions:
      - c2
      - c1
  - name: b2
    conditions:
      - c4
  - name: b2
    conditions:
      - c2
wants:
  - name: w1
  - name: w1
  - name: w2
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"b1": {}, "b2": {}, "b3": {},
		"c1": {}, "c2": {}, "c3": {}, "c4": {},
		"w1": {}, "w2": {},
	}, item.Agent.GetBehaviors())
}

func TestAgentGetProvides(t *testing.T) {
	a := NewAgent("foo")
	a.AddProvide(NewBehavior("p1"))
	a.AddProvide(NewBehaviorWithConditions("p1", []string{"c1"}))
	a.AddProvide(NewBehavior("p2"))

	got := a.GetProvides("p1")
	require.Len(t, got, 2)
	assert.Nil(t, a.GetProvides("missing"))
}

func TestAgentMergeDedups(t *testing.T) {
	a := NewAgent("foo").WithProvides([]Behavior{NewBehavior("p1")}).WithWants([]Behavior{NewBehavior("w1")})
	other := NewAgent("bar").WithProvides([]Behavior{
		NewBehavior("p1"),
		NewBehavior("p2"),
	}).WithWants([]Behavior{NewBehavior("w1"), NewBehavior("w2")})

	a.Merge(other)
	assert.Equal(t, []Behavior{NewBehavior("p1"), NewBehavior("p2")}, a.Provides)
	assert.Equal(t, []Behavior{NewBehavior("w1"), NewBehavior("w2")}, a.Wants)
}

// TestAgentReduceInlinesInternalProvider mirrors spec §4.2: a provide whose
// condition is itself provided internally gets that provider's conditions
// inlined, eliminating the intermediate name.
func TestAgentReduceInlinesInternalProvider(t *testing.T) {
	a := NewAgent("foo")
	a.AddProvide(NewBehaviorWithConditions("outer", []string{"inner"}))
	a.AddProvide(NewBehaviorWithConditions("inner", []string{"base"}))

	require.NoError(t, a.Reduce())

	byName := map[string]Behavior{}
	for _, p := range a.Provides {
		byName[p.Name] = p
	}
	require.Contains(t, byName, "outer")
	require.Contains(t, byName, "inner")
	assert.Equal(t, []string{"base"}, byName["outer"].Conditions)
	assert.Equal(t, []string{"base"}, byName["inner"].Conditions)
}

func TestAgentReduceLeavesExternalConditionsAlone(t *testing.T) {
	a := NewAgent("foo")
	a.AddProvide(NewBehaviorWithConditions("p", []string{"external"}))

	require.NoError(t, a.Reduce())
	require.Len(t, a.Provides, 1)
	assert.Equal(t, []string{"external"}, a.Provides[0].Conditions)
}

func TestAgentReduceDetectsCycle(t *testing.T) {
	a := NewAgent("foo")
	a.AddProvide(NewBehaviorWithConditions("p1", []string{"p2"}))
	a.AddProvide(NewBehaviorWithConditions("p2", []string{"p1"}))

	err := a.Reduce()
	require.Error(t, err)
	var cycleErr *ReductionCycleError
	assert.ErrorAs(t, err, &cycleErr)
}

func TestAgentReduceSortsOutput(t *testing.T) {
	a := NewAgent("foo")
	a.AddProvide(NewBehavior("zeta"))
	a.AddProvide(NewBehavior("alpha"))

	require.NoError(t, a.Reduce())
	require.Len(t, a.Provides, 2)
	assert.Equal(t, "alpha", a.Provides[0].Name)
	assert.Equal(t, "zeta", a.Provides[1].Name)
}

func TestAgentMakeInstance(t *testing.T) {
	a := NewAgent("base").
		WithProvides([]Behavior{NewBehaviorWithConditions("p", []string{"c"})}).
		WithWants([]Behavior{NewBehavior("w")})

	inst := a.MakeInstance("base | tag1", "tag1", "tag2")
	assert.Equal(t, "base | tag1", inst.Name)
	require.Len(t, inst.Provides, 1)
	assert.Equal(t, "p | tag1", inst.Provides[0].Name)
	assert.Equal(t, []string{"c | tag2"}, inst.Provides[0].Conditions)
	assert.Equal(t, []Behavior{NewBehavior("w")}, inst.Wants)
}

func TestAgentEqual(t *testing.T) {
	a := NewAgent("foo").WithProvides([]Behavior{NewBehavior("p")})
	b := NewAgent("foo").WithProvides([]Behavior{NewBehavior("p")})
	c := NewAgent("foo").WithProvides([]Behavior{NewBehavior("q")})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
