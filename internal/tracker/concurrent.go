package tracker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"promisetracker/internal/resolution"
)

// ResolveAll resolves every name in behaviorNames against t concurrently,
// bounded to GOMAXPROCS workers, and returns results in the same order as
// the input. It requires only a read lock per resolve (Resolve already
// takes it), so it is safe to run alongside other read-only callers; it
// must not be run alongside an in-flight AddAgent/AddSuperAgent.
//
// If ctx is canceled, ResolveAll stops launching new resolves and returns
// the context's error; any resolves already in flight still complete.
func ResolveAll(ctx context.Context, t *Tracker, behaviorNames []string) ([]resolution.Resolution, error) {
	results := make([]resolution.Resolution, len(behaviorNames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range behaviorNames {
		i, name := i, name
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = t.Resolve(name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
