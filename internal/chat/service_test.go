package chat

import (
	"context"
	"sync"
	"testing"

	"github.com/nulzo/assist-router/internal/command"
	"github.com/nulzo/assist-router/internal/history"
	"github.com/nulzo/assist-router/internal/registry"
	"github.com/nulzo/assist-router/internal/router"
	"github.com/nulzo/assist-router/internal/store/model"
	"github.com/nulzo/assist-router/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memRecorder collects entries synchronously for assertions.
type memRecorder struct {
	mu      sync.Mutex
	entries []model.TranscriptEntry
}

func (r *memRecorder) Record(entry *model.TranscriptEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
}

func (r *memRecorder) Start(ctx context.Context) {}
func (r *memRecorder) Stop()                     {}

func (r *memRecorder) senders() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Sender
	}
	return out
}

func newTestService(models []api.ModelConfig, rec *memRecorder) *Service {
	reg := registry.NewWithModels(models)
	r := router.New(zap.NewNop(), reg, router.NewSimulatedBackend())
	var recorder history.Recorder
	if rec != nil {
		recorder = rec
	}
	return NewService(zap.NewNop(), command.NewParser(), r, recorder)
}

func allCapsModel(name string) api.ModelConfig {
	return api.ModelConfig{
		Name:     name,
		Provider: api.ProviderLocal,
		Capabilities: []api.Capability{
			api.CapabilityChat,
			api.CapabilityCodeGeneration,
			api.CapabilityDebugging,
		},
	}
}

func TestSendChatMessage(t *testing.T) {
	rec := &memRecorder{}
	svc := newTestService([]api.ModelConfig{allCapsModel("demo-model")}, rec)

	result, err := svc.Send(context.Background(), "", "Hello AI, tell me a joke.")
	require.NoError(t, err)

	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, api.KindUnknown, result.Command.Kind)
	assert.Equal(t, api.CapabilityChat, result.Command.Capability)
	assert.Contains(t, result.Response.Content, "Hello AI, tell me a joke.")
	assert.Contains(t, result.Response.Content, "demo-model")

	assert.Equal(t, []string{model.SenderUser, model.SenderAssistant}, rec.senders())
}

func TestSendHelpIsNotRouted(t *testing.T) {
	rec := &memRecorder{}
	// no models at all: if help leaked to the router the content would be
	// the no-model sentinel instead of the help listing
	svc := newTestService(nil, rec)

	result, err := svc.Send(context.Background(), "s1", "/help")
	require.NoError(t, err)

	assert.Equal(t, api.KindHelp, result.Command.Kind)
	assert.Contains(t, result.Response.Content, "/generate")
	assert.NotContains(t, result.Response.Content, "No suitable model found")

	assert.Equal(t, []string{model.SenderUser, model.SenderSystem}, rec.senders())
}

func TestSendGenerateMarksCode(t *testing.T) {
	rec := &memRecorder{}
	svc := newTestService([]api.ModelConfig{allCapsModel("m")}, rec)

	result, err := svc.Send(context.Background(), "s1", "/generate a python function for fibonacci")
	require.NoError(t, err)

	assert.Equal(t, api.KindGenerate, result.Command.Kind)
	assert.Equal(t, api.CapabilityCodeGeneration, result.Command.Capability)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.entries, 2)
	assert.True(t, rec.entries[1].IsCode)
	assert.Equal(t, "m", rec.entries[1].ModelName)
}

func TestSendNoModelReportsSentinel(t *testing.T) {
	svc := newTestService([]api.ModelConfig{{
		Name:         "chat-only",
		Provider:     api.ProviderLocal,
		Capabilities: []api.Capability{api.CapabilityChat},
	}}, nil)

	result, err := svc.Send(context.Background(), "s1", "/debug this stack trace")
	require.NoError(t, err)
	assert.Contains(t, result.Response.Content, "No suitable model found")
}

func TestSendKeepsSessionID(t *testing.T) {
	svc := newTestService([]api.ModelConfig{allCapsModel("m")}, nil)

	result, err := svc.Send(context.Background(), "fixed-session", "hi")
	require.NoError(t, err)
	assert.Equal(t, "fixed-session", result.SessionID)
}
