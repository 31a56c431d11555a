package api

// Request is the routable unit of work: a capability need plus the
// prompt text to forward.
type Request struct {
	Capability Capability `json:"capability"`
	Prompt     string     `json:"prompt"`
}

// ErrNoModelContent is the sentinel content returned when no registered
// model supports the requested capability. It is reported, not fatal.
const ErrNoModelContent = "Error: No suitable model found."

// Response is the routed reply. Content embeds the prompt and the chosen
// model name verbatim when a model was found, or ErrNoModelContent when
// not. Model is empty in the no-match case.
type Response struct {
	ID      string `json:"id,omitempty"`
	Model   string `json:"model,omitempty"`
	Content string `json:"content"`
	Created int64  `json:"created,omitempty"`
	Cached  bool   `json:"cached,omitempty"`
}

// ChatRequest is the HTTP payload for the free-form chat endpoint.
type ChatRequest struct {
	Input     string `json:"input" binding:"required"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResult wraps a routed response with what the parser made of the
// input, so UI collaborators can render command feedback.
type ChatResult struct {
	SessionID string   `json:"session_id"`
	Command   Command  `json:"command"`
	Response  Response `json:"response"`
}

// DefaultProviderRequest sets the registry's default provider.
type DefaultProviderRequest struct {
	Provider Provider `json:"provider" binding:"required,oneof=openai anthropic local"`
}

// ProviderSettingsRequest updates stored credentials for one provider.
type ProviderSettingsRequest struct {
	APIKey   string `json:"api_key,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}
