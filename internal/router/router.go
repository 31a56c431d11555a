package router

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nulzo/assist-router/internal/registry"
	"github.com/nulzo/assist-router/internal/store/cache"
	"github.com/nulzo/assist-router/pkg/api"
	"go.uber.org/zap"
)

// Router resolves a request's capability to a registered model and
// forwards the prompt to the backend. Each call is stateless given the
// registry's current snapshot; the backend call is the only step that may
// block and it never holds the registry lock.
type Router struct {
	logger   *zap.Logger
	registry *registry.Registry
	backend  Backend
	cache    cache.CacheService
	cacheTTL time.Duration
}

type Option func(*Router)

// WithCache enables response caching keyed by capability and prompt.
func WithCache(c cache.CacheService, ttl time.Duration) Option {
	return func(r *Router) {
		r.cache = c
		r.cacheTTL = ttl
	}
}

func New(logger *zap.Logger, reg *registry.Registry, backend Backend, opts ...Option) *Router {
	r := &Router{
		logger:   logger,
		registry: reg,
		backend:  backend,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle selects a model for the request's capability and synthesizes a
// response. A missing model is reported through the response content, not
// as an error; only backend failures surface as errors.
func (r *Router) Handle(ctx context.Context, req api.Request) (api.Response, error) {
	model, ok := r.registry.SelectForCapability(req.Capability)
	if !ok {
		r.logger.Warn("No suitable model found for capability",
			zap.String("capability", string(req.Capability)),
		)
		return api.Response{
			ID:      uuid.New().String(),
			Content: api.ErrNoModelContent,
			Created: time.Now().Unix(),
		}, nil
	}

	key := responseKey(req)
	if r.cache != nil {
		var cached api.Response
		if err := r.cache.Get(ctx, key, &cached); err == nil {
			cached.Cached = true
			return cached, nil
		}
	}

	content, err := r.backend.Complete(ctx, model, req.Prompt)
	if err != nil {
		return api.Response{}, fmt.Errorf("backend call failed for model %s: %w", model.Name, err)
	}

	resp := api.Response{
		ID:      uuid.New().String(),
		Model:   model.Name,
		Content: content,
		Created: time.Now().Unix(),
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, resp, r.cacheTTL); err != nil {
			r.logger.Debug("Failed to cache response", zap.String("key", key), zap.Error(err))
		}
	}

	return resp, nil
}

func responseKey(req api.Request) string {
	sum := sha256.Sum256([]byte(req.Prompt))
	return fmt.Sprintf("resp:%s:%x", req.Capability, sum[:8])
}
