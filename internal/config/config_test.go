package config

import (
	"os"
	"testing"

	"github.com/nulzo/assist-router/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Env)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "openai", cfg.DefaultProvider)
	assert.True(t, cfg.Store.Enabled)
	assert.NotZero(t, cfg.Cache.TTL)
}

func TestLoadConfig_InvalidDefaultProvider(t *testing.T) {
	os.Clearenv()
	t.Setenv("DEFAULT_PROVIDER", "not-a-provider")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_provider")
}

func TestModelSeedResolve(t *testing.T) {
	seed := ModelSeed{
		Name:         "gpt-3.5-turbo",
		Provider:     "openai",
		Capabilities: []string{"chat", "code_generation"},
	}

	m, err := seed.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", m.Name)
	assert.Equal(t, api.ProviderOpenAI, m.Provider)
	assert.True(t, m.Supports(api.CapabilityChat))
	assert.True(t, m.Supports(api.CapabilityCodeGeneration))
	assert.False(t, m.Supports(api.CapabilityDebugging))
}

func TestModelSeedResolve_UnknownCapability(t *testing.T) {
	seed := ModelSeed{
		Name:         "m",
		Provider:     "local",
		Capabilities: []string{"telepathy"},
	}

	_, err := seed.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telepathy")
}

func TestModelSeedResolve_UnknownProvider(t *testing.T) {
	seed := ModelSeed{Name: "m", Provider: "skynet"}

	_, err := seed.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skynet")
}
