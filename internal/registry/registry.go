package registry

import (
	"sync"

	"github.com/nulzo/assist-router/pkg/api"
)

// Registry owns the mapping from model name to configuration plus the
// default-provider setting. One instance lives for the session; it is
// safe for concurrent use.
type Registry struct {
	mu              sync.RWMutex
	models          map[string]api.ModelConfig
	defaultProvider api.Provider
}

// New creates an empty registry. The default provider starts as OpenAI,
// matching the historical default.
func New() *Registry {
	return &Registry{
		models:          make(map[string]api.ModelConfig),
		defaultProvider: api.ProviderOpenAI,
	}
}

// NewWithModels creates a registry pre-populated with the given configs.
func NewWithModels(models []api.ModelConfig) *Registry {
	r := New()
	for _, m := range models {
		r.Register(m)
	}
	return r
}

// Register inserts or overwrites the entry keyed by cfg.Name. Re-registering
// a name replaces the prior entry entirely; capability sets are never merged.
func (r *Registry) Register(cfg api.ModelConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[cfg.Name] = cfg
}

// Update overwrites the entry only if name already exists. Updating an
// absent name is a silent no-op, not an error.
func (r *Registry) Update(name string, cfg api.ModelConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.models[name]; !ok {
		return
	}
	cfg.Name = name
	r.models[name] = cfg
}

// Remove deletes the entry keyed by name. Removing an absent name is a
// no-op.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.models, name)
}

// Get returns the config for name.
func (r *Registry) Get(name string) (api.ModelConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[name]
	return m, ok
}

// List returns a snapshot of all registered configs. Order is unspecified.
func (r *Registry) List() []api.ModelConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]api.ModelConfig, 0, len(r.models))
	for _, m := range r.models {
		list = append(list, m)
	}
	return list
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}

// SelectForCapability returns some registered model whose capability set
// contains cap. Selection follows map iteration order: when several models
// qualify, which one wins is unspecified and callers must not rely on it.
func (r *Registry) SelectForCapability(cap api.Capability) (api.ModelConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.models {
		if m.Supports(cap) {
			return m, true
		}
	}
	return api.ModelConfig{}, false
}

// SetDefaultProvider sets the default provider. Descriptive only; it does
// not influence SelectForCapability.
func (r *Registry) SetDefaultProvider(p api.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultProvider = p
}

// DefaultProvider returns the current default provider.
func (r *Registry) DefaultProvider() api.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultProvider
}
