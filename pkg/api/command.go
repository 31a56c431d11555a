package api

// CommandKind classifies a parsed chat input.
type CommandKind string

const (
	KindGenerate CommandKind = "generate"
	KindExplain  CommandKind = "explain"
	KindDebug    CommandKind = "debug"
	KindHelp     CommandKind = "help"

	// KindUnknown marks input that matched no command; it is treated as
	// a plain chat message.
	KindUnknown CommandKind = "unknown"
)

// CommandInfo describes one registered prefix command for discovery
// endpoints and help output.
type CommandInfo struct {
	Name       string      `json:"name"`
	Kind       CommandKind `json:"kind"`
	Capability Capability  `json:"capability,omitempty"`
}

// Command is the transient result of parsing one chat input. Capability
// is always set (Chat when nothing matched) except for Help, which the
// caller must answer locally instead of forwarding to the router.
type Command struct {
	Kind       CommandKind `json:"kind"`
	Args       []string    `json:"args"`
	Raw        string      `json:"raw"`
	Capability Capability  `json:"capability,omitempty"`
}
