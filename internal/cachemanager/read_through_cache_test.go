package cachemanager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type pageInput struct {
	Page int
}

func TestReadThroughCache_LoadsOnceOnHit(t *testing.T) {
	ctx := context.Background()
	calls := 0
	rt := NewReadThroughCache[string, []string, pageInput](
		NewInMemoryCacheManager[string, []string]("pages", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, in pageInput) ([]string, error) {
			calls++
			return []string{"row"}, nil
		},
		false,
	)

	for i := 0; i < 3; i++ {
		v, err := rt.Get(ctx, "page:1", pageInput{Page: 1}, DefaultExpiration)
		require.NoError(t, err)
		require.Equal(t, []string{"row"}, v)
	}
	require.Equal(t, 1, calls)

	require.NoError(t, rt.Invalidate(ctx))
	_, err := rt.Get(ctx, "page:1", pageInput{Page: 1}, DefaultExpiration)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_SkipCache(t *testing.T) {
	ctx := context.Background()
	calls := 0
	rt := NewReadThroughCache[string, int, pageInput](
		NewInMemoryCacheManager[string, int]("pages", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, in pageInput) (int, error) {
			calls++
			return in.Page, nil
		},
		true,
	)

	_, _ = rt.Get(ctx, "k", pageInput{Page: 2}, DefaultExpiration)
	_, _ = rt.Get(ctx, "k", pageInput{Page: 2}, DefaultExpiration)
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	fail := true
	rt := NewReadThroughCache[string, int, pageInput](
		NewInMemoryCacheManager[string, int]("pages", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, in pageInput) (int, error) {
			if fail {
				return 0, errors.New("db down")
			}
			return in.Page, nil
		},
		false,
	)

	_, err := rt.Get(ctx, "k", pageInput{Page: 4}, DefaultExpiration)
	require.Error(t, err)

	fail = false
	v, err := rt.Get(ctx, "k", pageInput{Page: 4}, DefaultExpiration)
	require.NoError(t, err)
	require.Equal(t, 4, v)
}
