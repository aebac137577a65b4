package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"promisetracker/internal/promise"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestResolveAllReturnsInOrder(t *testing.T) {
	tr := New()
	require.NoError(t, tr.AddAgent(agentWithProvide("a1", promise.NewBehavior("b1"))))
	require.NoError(t, tr.AddAgent(agentWithProvide("a2", promise.NewBehavior("b2"))))
	require.NoError(t, tr.AddAgent(agentWithProvide("a3", promise.NewBehaviorWithConditions("b3", []string{"missing"}))))

	names := []string{"b1", "b2", "b3"}
	results, err := ResolveAll(context.Background(), tr, names)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].IsSatisfied())
	assert.True(t, results[1].IsSatisfied())
	assert.False(t, results[2].IsSatisfied())
	for i, r := range results {
		assert.Equal(t, names[i], r.BehaviorName)
	}
}

func TestResolveAllManyNamesConcurrently(t *testing.T) {
	tr := New()
	for i := 0; i < 50; i++ {
		require.NoError(t, tr.AddAgent(agentWithProvide(
			string(rune('a'))+string(rune('0'+i%10)),
			promise.NewBehavior(string(rune('b'))+string(rune('0'+i%10))),
		)))
	}

	names := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		names = append(names, string(rune('b'))+string(rune('0'+i)))
	}

	results, err := ResolveAll(context.Background(), tr, names)
	require.NoError(t, err)
	assert.Len(t, results, 10)
}

func TestResolveAllContextCanceled(t *testing.T) {
	tr := New()
	require.NoError(t, tr.AddAgent(agentWithProvide("a1", promise.NewBehavior("b1"))))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ResolveAll(ctx, tr, []string{"b1", "b2", "b3"})
	require.Error(t, err)
}
