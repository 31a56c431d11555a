package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nulzo/assist-router/internal/store"
	"github.com/nulzo/assist-router/internal/store/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) store.Repository {
	t.Helper()
	repo, err := NewSQLiteStorage(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestTranscriptAppendAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session := uuid.New().String()
	base := time.Now().UTC().Truncate(time.Second)

	entries := []*model.TranscriptEntry{
		{ID: uuid.New().String(), SessionID: session, Sender: model.SenderUser, Content: "fix my bug", CreatedAt: base},
		{ID: uuid.New().String(), SessionID: session, Sender: model.SenderAssistant, Content: "done", ModelName: "m", CreatedAt: base.Add(time.Second)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Transcripts().Append(ctx, e))
	}

	got, err := repo.Transcripts().ListBySession(ctx, session, 100)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.SenderUser, got[0].Sender)
	assert.Equal(t, "fix my bug", got[0].Content)
	assert.Equal(t, "m", got[1].ModelName)
}

func TestTranscriptDeleteSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session := uuid.New().String()
	require.NoError(t, repo.Transcripts().Append(ctx, &model.TranscriptEntry{
		ID: uuid.New().String(), SessionID: session, Sender: model.SenderUser,
		Content: "hello", CreatedAt: time.Now(),
	}))

	require.NoError(t, repo.Transcripts().DeleteSession(ctx, session))

	got, err := repo.Transcripts().ListBySession(ctx, session, 100)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSettingsUpsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	setting := &model.ProviderSetting{
		Provider:  "openai",
		APIKey:    "sk-demo-123",
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Settings().Upsert(ctx, setting))

	got, err := repo.Settings().Get(ctx, "openai")
	require.NoError(t, err)
	assert.Equal(t, "sk-demo-123", got.APIKey)
	assert.True(t, got.HasKey())

	// upsert replaces
	setting.APIKey = "sk-demo-456"
	setting.Endpoint = "http://localhost:11434"
	require.NoError(t, repo.Settings().Upsert(ctx, setting))

	got, err = repo.Settings().Get(ctx, "openai")
	require.NoError(t, err)
	assert.Equal(t, "sk-demo-456", got.APIKey)
	assert.Equal(t, "http://localhost:11434", got.Endpoint)

	list, err := repo.Settings().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSettingsGetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Settings().Get(context.Background(), "anthropic")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session := uuid.New().String()
	err := repo.WithTx(ctx, func(txRepo store.Repository) error {
		if err := txRepo.Transcripts().Append(ctx, &model.TranscriptEntry{
			ID: uuid.New().String(), SessionID: session, Sender: model.SenderUser,
			Content: "hello", CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	got, err := repo.Transcripts().ListBySession(ctx, session, 100)
	require.NoError(t, err)
	assert.Empty(t, got)
}
