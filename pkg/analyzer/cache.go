package analyzer

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/gotwoslash/pkg/options"
	"gitlab.com/tozd/go/errors"
)

// Cache reuses environments across runs with identical compiler options.
type Cache struct {
	mu   sync.Mutex
	envs map[string]Environment
}

func NewCache() *Cache {
	return &Cache{envs: make(map[string]Environment)}
}

// Get returns the environment for opts, building it with factory on a miss.
// The factory is called with the lock held so concurrent misses for the same
// options build once.
func (c *Cache) Get(ctx context.Context, factory Factory, opts options.Values) (Environment, error) {
	key := opts.Identity()

	c.mu.Lock()
	defer c.mu.Unlock()

	if env, ok := c.envs[key]; ok {
		zerolog.Ctx(ctx).Trace().Str("key", key).Msg("environment cache hit")
		return env, nil
	}

	env, err := factory.NewEnvironment(ctx, opts)
	if err != nil {
		return nil, errors.Errorf("creating environment: %w", err)
	}
	c.envs[key] = env
	zerolog.Ctx(ctx).Debug().Str("key", key).Msg("environment created")
	return env, nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.envs)
}

// Reset drops every cached environment.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.envs = make(map[string]Environment)
}
