package analyzer_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gotwoslash/gen/mockery"
	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/options"
)

func TestCacheReusesEnvironmentForEqualOptions(t *testing.T) {
	ctx := context.Background()
	env := mockery.NewMockEnvironment_analyzer(t)
	factory := mockery.NewMockFactory_analyzer(t)
	factory.EXPECT().NewEnvironment(mock.Anything, mock.Anything).Return(env, nil).Once()

	cache := analyzer.NewCache()

	a, err := cache.Get(ctx, factory, options.Values{"goos": "linux", "maxErrors": float64(3)})
	require.NoError(t, err)
	b, err := cache.Get(ctx, factory, options.Values{"maxErrors": float64(3), "goos": "linux"})
	require.NoError(t, err)

	assert.Same(t, env, a)
	assert.Same(t, env, b)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheSeparatesDifferentOptions(t *testing.T) {
	ctx := context.Background()
	factory := mockery.NewMockFactory_analyzer(t)
	factory.EXPECT().NewEnvironment(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, options.Values) (analyzer.Environment, error) {
			return mockery.NewMockEnvironment_analyzer(t), nil
		}).Twice()

	cache := analyzer.NewCache()
	_, err := cache.Get(ctx, factory, options.Values{"goos": "linux"})
	require.NoError(t, err)
	_, err = cache.Get(ctx, factory, options.Values{"goos": "darwin"})
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
	cache.Reset()
	assert.Equal(t, 0, cache.Len())
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	ctx := context.Background()
	factory := mockery.NewMockFactory_analyzer(t)
	factory.EXPECT().NewEnvironment(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	cache := analyzer.NewCache()
	_, err := cache.Get(ctx, factory, options.Values{})
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheConcurrentGet(t *testing.T) {
	ctx := context.Background()
	env := mockery.NewMockEnvironment_analyzer(t)
	factory := mockery.NewMockFactory_analyzer(t)
	factory.EXPECT().NewEnvironment(mock.Anything, mock.Anything).Return(env, nil).Once()

	cache := analyzer.NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := cache.Get(ctx, factory, options.Values{"goarch": "arm64"})
			assert.NoError(t, err)
			assert.Same(t, env, got)
		}()
	}
	wg.Wait()
}
