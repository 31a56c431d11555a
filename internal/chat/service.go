package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nulzo/assist-router/internal/command"
	"github.com/nulzo/assist-router/internal/history"
	"github.com/nulzo/assist-router/internal/router"
	"github.com/nulzo/assist-router/internal/store/model"
	"github.com/nulzo/assist-router/pkg/api"
	"go.uber.org/zap"
)

// Service drives one chat exchange: it records the user message, parses
// it, answers /help locally, forwards everything else to the router, and
// records the reply. Help is never forwarded.
type Service struct {
	logger   *zap.Logger
	parser   *command.Parser
	router   *router.Router
	recorder history.Recorder // optional
}

func NewService(logger *zap.Logger, parser *command.Parser, r *router.Router, rec history.Recorder) *Service {
	return &Service{
		logger:   logger,
		parser:   parser,
		router:   r,
		recorder: rec,
	}
}

// Send processes one user input within a session. An empty sessionID
// starts a new session.
func (s *Service) Send(ctx context.Context, sessionID, text string) (api.ChatResult, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	s.record(&model.TranscriptEntry{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Sender:    model.SenderUser,
		Content:   text,
		CreatedAt: time.Now(),
	})

	cmd := s.parser.Parse(text)

	if cmd.Kind == api.KindHelp {
		help := s.parser.Help()
		s.record(&model.TranscriptEntry{
			ID:        uuid.New().String(),
			SessionID: sessionID,
			Sender:    model.SenderSystem,
			Content:   help,
			CreatedAt: time.Now(),
		})
		return api.ChatResult{
			SessionID: sessionID,
			Command:   cmd,
			Response:  api.Response{Content: help, Created: time.Now().Unix()},
		}, nil
	}

	// The prompt is the full input; the capability decides the model.
	resp, err := s.router.Handle(ctx, api.Request{
		Capability: cmd.Capability,
		Prompt:     cmd.Raw,
	})
	if err != nil {
		s.logger.Warn("Routing failed",
			zap.String("session_id", sessionID),
			zap.String("capability", string(cmd.Capability)),
			zap.Error(err),
		)
		return api.ChatResult{}, err
	}

	s.record(&model.TranscriptEntry{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Sender:    model.SenderAssistant,
		Content:   resp.Content,
		IsCode:    cmd.Kind == api.KindGenerate,
		ModelName: resp.Model,
		CreatedAt: time.Now(),
	})

	return api.ChatResult{
		SessionID: sessionID,
		Command:   cmd,
		Response:  resp,
	}, nil
}

func (s *Service) record(entry *model.TranscriptEntry) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(entry)
}
