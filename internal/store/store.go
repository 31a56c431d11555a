package store

import (
	"context"
	"errors"

	"github.com/nulzo/assist-router/internal/store/model"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// Repository is the main contract for the data layer.
type Repository interface {
	Transcripts() TranscriptRepository
	Settings() SettingsRepository

	// transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	Close() error
}

type TranscriptRepository interface {
	// Append stores one chat message.
	Append(ctx context.Context, entry *model.TranscriptEntry) error
	// ListBySession returns a session's history, oldest first.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]model.TranscriptEntry, error)
	// DeleteSession removes a session's history entirely.
	DeleteSession(ctx context.Context, sessionID string) error
}

type SettingsRepository interface {
	// Upsert creates or replaces the settings for a provider.
	Upsert(ctx context.Context, setting *model.ProviderSetting) error
	// Get retrieves one provider's settings.
	Get(ctx context.Context, provider string) (*model.ProviderSetting, error)
	// List returns all stored provider settings.
	List(ctx context.Context) ([]model.ProviderSetting, error)
}
