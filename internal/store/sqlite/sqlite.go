package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/nulzo/assist-router/internal/store"
	"github.com/nulzo/assist-router/internal/store/model"
)

// DB defines the interface for database operations (satisfied by *sqlx.DB and *sqlx.Tx)
type DB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SqliteRepository implements store.Repository
type SqliteRepository struct {
	db       *sqlx.DB // Required for starting new transactions
	executor DB       // Used for actual queries (can be *sqlx.DB or *sqlx.Tx)
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{
		db:       db,
		executor: db,
	}
}

func (r *SqliteRepository) Close() error {
	return r.db.Close()
}

func (r *SqliteRepository) WithTx(ctx context.Context, fn func(repo store.Repository) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	txRepo := &SqliteRepository{
		db:       r.db,
		executor: tx,
	}

	if err := fn(txRepo); err != nil {
		// attempt rollback, but prioritize original error
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *SqliteRepository) Transcripts() store.TranscriptRepository {
	return &transcriptRepo{db: r.executor}
}

func (r *SqliteRepository) Settings() store.SettingsRepository {
	return &settingsRepo{db: r.executor}
}

type transcriptRepo struct {
	db DB
}

func (r *transcriptRepo) Append(ctx context.Context, entry *model.TranscriptEntry) error {
	query := `
	INSERT INTO transcripts (id, session_id, sender, content, is_code, model_name, created_at)
	VALUES (:id, :session_id, :sender, :content, :is_code, :model_name, :created_at)`
	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}

func (r *transcriptRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.TranscriptEntry, error) {
	var entries []model.TranscriptEntry
	query := `SELECT * FROM transcripts WHERE session_id = ? ORDER BY created_at, id LIMIT ?`
	err := r.db.SelectContext(ctx, &entries, query, sessionID, limit)
	return entries, err
}

func (r *transcriptRepo) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transcripts WHERE session_id = ?`, sessionID)
	return err
}

type settingsRepo struct {
	db DB
}

func (r *settingsRepo) Upsert(ctx context.Context, setting *model.ProviderSetting) error {
	query := `
	INSERT INTO provider_settings (provider, api_key, endpoint, updated_at)
	VALUES (:provider, :api_key, :endpoint, :updated_at)
	ON CONFLICT(provider) DO UPDATE SET
		api_key = excluded.api_key,
		endpoint = excluded.endpoint,
		updated_at = excluded.updated_at`
	_, err := r.db.NamedExecContext(ctx, query, setting)
	return err
}

func (r *settingsRepo) Get(ctx context.Context, provider string) (*model.ProviderSetting, error) {
	var setting model.ProviderSetting
	err := r.db.GetContext(ctx, &setting, `SELECT * FROM provider_settings WHERE provider = ?`, provider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingsRepo) List(ctx context.Context) ([]model.ProviderSetting, error) {
	var settings []model.ProviderSetting
	err := r.db.SelectContext(ctx, &settings, `SELECT * FROM provider_settings ORDER BY provider`)
	return settings, err
}
