package command

import (
	"sort"
	"strings"

	"github.com/nulzo/assist-router/pkg/api"
)

// Marker is the character that introduces a prefix command.
const Marker = "/"

// binding ties a prefix command to its kind and the capability it routes to.
type binding struct {
	kind       api.CommandKind
	capability api.Capability
}

// Parser turns free-form chat input into a structured command. Prefix
// commands win; a small keyword fallback catches natural-language verbs;
// everything else is a plain chat message.
type Parser struct {
	commands map[string]binding
	synonyms map[string]binding
}

// NewParser creates a parser with the built-in command table.
func NewParser() *Parser {
	generate := binding{kind: api.KindGenerate, capability: api.CapabilityCodeGeneration}
	explain := binding{kind: api.KindExplain, capability: api.CapabilityChat}
	debug := binding{kind: api.KindDebug, capability: api.CapabilityDebugging}

	return &Parser{
		commands: map[string]binding{
			Marker + "generate": generate,
			Marker + "explain":  explain,
			Marker + "debug":    debug,
			Marker + "help":     {kind: api.KindHelp},
		},
		synonyms: map[string]binding{
			"generate": generate,
			"create":   generate,
			"explain":  explain,
			"what":     explain,
			"debug":    debug,
			"fix":      debug,
		},
	}
}

// Parse splits input on whitespace and classifies it. The returned
// Command always carries a capability (Chat by default), except for Help
// which must be answered by the caller and never forwarded to the router.
func (p *Parser) Parse(input string) api.Command {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return api.Command{
			Kind:       api.KindUnknown,
			Args:       []string{},
			Raw:        input,
			Capability: api.CapabilityChat,
		}
	}

	keyword := strings.ToLower(tokens[0])

	if b, ok := p.commands[keyword]; ok {
		return api.Command{
			Kind:       b.kind,
			Args:       tokens[1:],
			Raw:        input,
			Capability: b.capability,
		}
	}

	if b, ok := p.synonyms[keyword]; ok {
		return api.Command{
			Kind:       b.kind,
			Args:       tokens[1:],
			Raw:        input,
			Capability: b.capability,
		}
	}

	// Plain chat: the whole token list becomes the arguments.
	return api.Command{
		Kind:       api.KindUnknown,
		Args:       tokens,
		Raw:        input,
		Capability: api.CapabilityChat,
	}
}

// Commands returns the prefix command table in alphabetical order.
func (p *Parser) Commands() []api.CommandInfo {
	names := make([]string, 0, len(p.commands))
	for name := range p.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	infos := make([]api.CommandInfo, 0, len(names))
	for _, name := range names {
		b := p.commands[name]
		infos = append(infos, api.CommandInfo{
			Name:       name,
			Kind:       b.kind,
			Capability: b.capability,
		})
	}
	return infos
}

// Help returns a human-readable listing of the registered prefix commands
// plus a natural-language usage hint. Listing order is alphabetical for
// readability; callers must not depend on it.
func (p *Parser) Help() string {
	names := make([]string, 0, len(p.commands))
	for name := range p.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(" - ")
		b.WriteString(string(p.commands[name].kind))
		b.WriteString("\n")
	}
	b.WriteString("\nYou can also phrase requests in natural language, e.g. 'generate a python function to sort a list'.")
	return b.String()
}
