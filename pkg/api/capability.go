package api

import "fmt"

// Capability is the routing key: the category of AI-assisted task a
// model can serve.
type Capability string

const (
	CapabilityChat           Capability = "chat"
	CapabilityCodeGeneration Capability = "code_generation"
	CapabilityDebugging      Capability = "debugging"
)

// ParseCapability converts a config/wire string into a Capability.
func ParseCapability(s string) (Capability, error) {
	switch Capability(s) {
	case CapabilityChat, CapabilityCodeGeneration, CapabilityDebugging:
		return Capability(s), nil
	}
	return "", fmt.Errorf("unknown capability: %q", s)
}

// Provider identifies the backend family a model belongs to. It is
// descriptive only and never affects routing.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderLocal     Provider = "local"
)

// ParseProvider converts a config/wire string into a Provider.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderOpenAI, ProviderAnthropic, ProviderLocal:
		return Provider(s), nil
	}
	return "", fmt.Errorf("unknown provider: %q", s)
}

// ModelConfig is a named, provider-tagged bundle of supported
// capabilities. Name acts as the primary key in the registry. A model
// with an empty capability set is valid but unroutable.
type ModelConfig struct {
	Name         string       `mapstructure:"name" json:"name" binding:"required"`
	Provider     Provider     `mapstructure:"provider" json:"provider" binding:"required,oneof=openai anthropic local"`
	Capabilities []Capability `mapstructure:"capabilities" json:"capabilities" binding:"dive,oneof=chat code_generation debugging"`
}

// Supports reports whether the model's capability set contains cap.
// Duplicates in the set are meaningless; this is a membership test.
func (m ModelConfig) Supports(cap Capability) bool {
	for _, c := range m.Capabilities {
		if c == cap {
			return true
		}
	}
	return false
}
