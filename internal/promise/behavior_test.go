package promise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBehaviorSimple(t *testing.T) {
	b := NewBehavior("a")
	assert.Equal(t, "a", b.Name)
	assert.True(t, b.IsUnconditional())
}

func TestBehaviorFromYAML(t *testing.T) {
	item, err := ParseItem([]byte("kind: Agent\nname: foo\nprovides:\n  - name: foo\n"))
	require.NoError(t, err)
	require.Len(t, item.Agent.Provides, 1)
	assert.Equal(t, "foo", item.Agent.Provides[0].Name)

	item2, err := ParseItem([]byte("kind: Agent\nname: x\nprovides:\n  - name: foo\n    conditions:\n      - bar\n      - baz\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "baz"}, item2.Agent.Provides[0].Conditions)
}

func TestBehaviorIsUnconditional(t *testing.T) {
	b := Behavior{Name: "a"}
	assert.True(t, b.IsUnconditional())

	b2 := NewBehaviorWithConditions("a", []string{"c"})
	assert.False(t, b2.IsUnconditional())
}

func TestBehaviorHasBehavior(t *testing.T) {
	b := NewBehaviorWithConditions("p", []string{"c1", "c2"})
	assert.True(t, b.HasBehavior("p"))
	assert.True(t, b.HasBehavior("c1"))
	assert.True(t, b.HasBehavior("c2"))
	assert.False(t, b.HasBehavior("c3"))
}

func TestBehaviorHasNoneOf(t *testing.T) {
	b := NewBehaviorWithConditions("p", []string{"c1", "c2"})
	assert.True(t, b.HasNoneOf(map[string]struct{}{"c3": {}}))
	assert.False(t, b.HasNoneOf(map[string]struct{}{"c1": {}}))
	assert.True(t, NewBehavior("p").HasNoneOf(nil))
}

func TestBehaviorMakeInstance(t *testing.T) {
	b := NewBehaviorWithConditions("p", []string{"c1", "c2"})
	tagged := b.MakeInstance("tp", "tc")
	assert.Equal(t, "p | tp", tagged.Name)
	assert.Equal(t, []string{"c1 | tc", "c2 | tc"}, tagged.Conditions)

	untagged := b.MakeInstance("", "")
	assert.True(t, untagged.Equal(b))
}

func TestBehaviorEqual(t *testing.T) {
	a := NewBehaviorWithConditions("p", []string{"c1", "c2"})
	b := NewBehaviorWithConditions("p", []string{"c1", "c2"})
	c := NewBehaviorWithConditions("p", []string{"c2", "c1"})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "Equal is order-sensitive")
}
