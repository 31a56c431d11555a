package catalog

import "github.com/nulzo/assist-router/pkg/api"

// DefaultModels is the built-in seed catalog, used when the config file
// supplies no models of its own. The local model covers debugging so
// every capability is routable out of the box.
var DefaultModels = []api.ModelConfig{
	{
		Name:     "gpt-3.5-turbo",
		Provider: api.ProviderOpenAI,
		Capabilities: []api.Capability{
			api.CapabilityChat,
			api.CapabilityCodeGeneration,
		},
	},
	{
		Name:     "claude-2",
		Provider: api.ProviderAnthropic,
		Capabilities: []api.Capability{
			api.CapabilityChat,
			api.CapabilityCodeGeneration,
		},
	},
	{
		Name:     "local-coder",
		Provider: api.ProviderLocal,
		Capabilities: []api.Capability{
			api.CapabilityChat,
			api.CapabilityCodeGeneration,
			api.CapabilityDebugging,
		},
	},
}

// Defaults returns a copy of the seed catalog so callers can mutate
// freely.
func Defaults() []api.ModelConfig {
	out := make([]api.ModelConfig, len(DefaultModels))
	copy(out, DefaultModels)
	return out
}
