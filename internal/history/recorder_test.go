package history

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nulzo/assist-router/internal/store"
	"github.com/nulzo/assist-router/internal/store/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// captureRepo is a store.Repository that records appended transcript
// entries in memory.
type captureRepo struct {
	mu      sync.Mutex
	entries []model.TranscriptEntry
}

func (r *captureRepo) Transcripts() store.TranscriptRepository { return (*captureTranscripts)(r) }
func (r *captureRepo) Settings() store.SettingsRepository      { return nil }
func (r *captureRepo) Close() error                            { return nil }
func (r *captureRepo) WithTx(ctx context.Context, fn func(store.Repository) error) error {
	return fn(r)
}

type captureTranscripts captureRepo

func (t *captureTranscripts) Append(ctx context.Context, entry *model.TranscriptEntry) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, *entry)
	return nil
}

func (t *captureTranscripts) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.TranscriptEntry, error) {
	return nil, nil
}

func (t *captureTranscripts) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func (r *captureRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func TestRecorderFlushesOnStop(t *testing.T) {
	repo := &captureRepo{}
	rec := NewRecorder(zap.NewNop(), repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)

	rec.Record(&model.TranscriptEntry{ID: "1", SessionID: "s", Sender: model.SenderUser, Content: "hi", CreatedAt: time.Now()})
	rec.Record(&model.TranscriptEntry{ID: "2", SessionID: "s", Sender: model.SenderAssistant, Content: "hello", CreatedAt: time.Now()})

	rec.Stop()

	assert.Eventually(t, func() bool {
		return repo.count() == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRecorderFlushesFullBatch(t *testing.T) {
	repo := &captureRepo{}
	rec := NewRecorder(zap.NewNop(), repo).(*recorder)
	rec.batchSize = 2

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)

	rec.Record(&model.TranscriptEntry{ID: "1", SessionID: "s", Sender: model.SenderUser, Content: "a", CreatedAt: time.Now()})
	rec.Record(&model.TranscriptEntry{ID: "2", SessionID: "s", Sender: model.SenderUser, Content: "b", CreatedAt: time.Now()})

	// batch size reached, no Stop needed
	assert.Eventually(t, func() bool {
		return repo.count() == 2
	}, 2*time.Second, 10*time.Millisecond)

	rec.Stop()
}
