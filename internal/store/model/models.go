package model

import "time"

// TranscriptEntry is one message in a chat session's history.
type TranscriptEntry struct {
	ID        string    `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"session_id"`
	Sender    string    `db:"sender" json:"sender"` // 'user', 'assistant', 'system'
	Content   string    `db:"content" json:"content"`
	IsCode    bool      `db:"is_code" json:"is_code"`
	ModelName string    `db:"model_name" json:"model_name,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Transcript senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
	SenderSystem    = "system"
)

// ProviderSetting stores per-provider credentials and endpoint overrides.
type ProviderSetting struct {
	Provider  string    `db:"provider" json:"provider"`
	APIKey    string    `db:"api_key" json:"-"` // Never return the key
	Endpoint  string    `db:"endpoint" json:"endpoint,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HasKey reports whether a credential is stored, without exposing it.
func (s ProviderSetting) HasKey() bool {
	return s.APIKey != ""
}
