package history

import (
	"context"
	"time"

	"github.com/nulzo/assist-router/internal/store"
	"github.com/nulzo/assist-router/internal/store/model"
	"go.uber.org/zap"
)

// Recorder handles the asynchronous persistence of chat transcripts.
type Recorder interface {
	Record(entry *model.TranscriptEntry)
	Start(ctx context.Context)
	Stop()
}

type recorder struct {
	logger    *zap.Logger
	repo      store.Repository
	entryChan chan *model.TranscriptEntry
	batchSize int
	flushTime time.Duration
}

func NewRecorder(logger *zap.Logger, repo store.Repository) Recorder {
	return &recorder{
		logger:    logger,
		repo:      repo,
		entryChan: make(chan *model.TranscriptEntry, 10000),
		batchSize: 50,
		flushTime: 5 * time.Second,
	}
}

func (r *recorder) Record(entry *model.TranscriptEntry) {
	select {
	case r.entryChan <- entry:
	default:
		r.logger.Warn("Transcript buffer full, dropping entry",
			zap.String("session_id", entry.SessionID),
		)
	}
}

func (r *recorder) Start(ctx context.Context) {
	go r.worker(ctx)
}

func (r *recorder) Stop() {
	close(r.entryChan)
}

func (r *recorder) worker(ctx context.Context) {
	batch := make([]*model.TranscriptEntry, 0, r.batchSize)
	ticker := time.NewTicker(r.flushTime)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		for _, entry := range batch {
			if err := r.repo.Transcripts().Append(context.Background(), entry); err != nil {
				r.logger.Error("Failed to persist transcript entry",
					zap.String("id", entry.ID),
					zap.Error(err),
				)
			}
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry, ok := <-r.entryChan:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= r.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			flush()
			return
		}
	}
}
