package command

import (
	"testing"

	"github.com/nulzo/assist-router/pkg/api"
	"github.com/stretchr/testify/assert"
)

func TestParsePrefixCommands(t *testing.T) {
	p := NewParser()

	cmd := p.Parse("/generate x y")
	assert.Equal(t, api.KindGenerate, cmd.Kind)
	assert.Equal(t, api.CapabilityCodeGeneration, cmd.Capability)
	assert.Equal(t, []string{"x", "y"}, cmd.Args)
	assert.Equal(t, "/generate x y", cmd.Raw)

	cmd = p.Parse("/explain this code")
	assert.Equal(t, api.KindExplain, cmd.Kind)
	assert.Equal(t, api.CapabilityChat, cmd.Capability)

	cmd = p.Parse("/debug this rust code")
	assert.Equal(t, api.KindDebug, cmd.Kind)
	assert.Equal(t, api.CapabilityDebugging, cmd.Capability)
	assert.Equal(t, []string{"this", "rust", "code"}, cmd.Args)
}

func TestParsePrefixCaseInsensitive(t *testing.T) {
	p := NewParser()

	cmd := p.Parse("/GENERATE fibonacci")
	assert.Equal(t, api.KindGenerate, cmd.Kind)
	assert.Equal(t, []string{"fibonacci"}, cmd.Args)
}

func TestParseHelp(t *testing.T) {
	p := NewParser()

	cmd := p.Parse("/help")
	assert.Equal(t, api.KindHelp, cmd.Kind)
	assert.Empty(t, cmd.Capability)
}

func TestParseNaturalLanguageFallback(t *testing.T) {
	p := NewParser()

	cmd := p.Parse("generate a rust struct")
	assert.Equal(t, api.KindGenerate, cmd.Kind)
	assert.Equal(t, api.CapabilityCodeGeneration, cmd.Capability)
	assert.Equal(t, []string{"a", "rust", "struct"}, cmd.Args)

	cmd = p.Parse("create a web server")
	assert.Equal(t, api.KindGenerate, cmd.Kind)

	cmd = p.Parse("what does this do")
	assert.Equal(t, api.KindExplain, cmd.Kind)
	assert.Equal(t, api.CapabilityChat, cmd.Capability)

	cmd = p.Parse("fix my bug")
	assert.Equal(t, api.KindDebug, cmd.Kind)
	assert.Equal(t, api.CapabilityDebugging, cmd.Capability)
}

func TestParsePlainChatKeepsAllTokens(t *testing.T) {
	p := NewParser()

	cmd := p.Parse("Hello there, how are you?")
	assert.Equal(t, api.KindUnknown, cmd.Kind)
	assert.Equal(t, api.CapabilityChat, cmd.Capability)
	// the whole token list, not the remainder after the first token
	assert.Equal(t, []string{"Hello", "there,", "how", "are", "you?"}, cmd.Args)
}

func TestParseEmptyInput(t *testing.T) {
	p := NewParser()

	cmd := p.Parse("")
	assert.Equal(t, api.KindUnknown, cmd.Kind)
	assert.Empty(t, cmd.Args)
	assert.Equal(t, api.CapabilityChat, cmd.Capability)

	cmd = p.Parse("   \t  ")
	assert.Equal(t, api.KindUnknown, cmd.Kind)
	assert.Empty(t, cmd.Args)
	assert.Equal(t, api.CapabilityChat, cmd.Capability)
}

func TestHelpListing(t *testing.T) {
	p := NewParser()

	help := p.Help()
	assert.Contains(t, help, "/generate")
	assert.Contains(t, help, "/explain")
	assert.Contains(t, help, "/debug")
	assert.Contains(t, help, "/help")
	assert.Contains(t, help, "natural language")
}
