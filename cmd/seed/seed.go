package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nulzo/assist-router/internal/store/model"
	"github.com/nulzo/assist-router/internal/store/sqlite"
	"go.uber.org/zap"
)

// Seeds a local database with provider settings and a demo chat session
// so the history and settings endpoints have something to serve.
func main() {
	zl, _ := zap.NewDevelopment()
	repo, err := sqlite.NewSQLiteStorage("assist.db", zl)
	if err != nil {
		log.Fatal(err)
	}
	defer repo.Close()

	ctx := context.Background()

	for _, s := range []*model.ProviderSetting{
		{Provider: "openai", APIKey: "sk-demo-openai", UpdatedAt: time.Now()},
		{Provider: "anthropic", APIKey: "sk-demo-anthropic", UpdatedAt: time.Now()},
		{Provider: "local", Endpoint: "http://localhost:11434", UpdatedAt: time.Now()},
	} {
		if err := repo.Settings().Upsert(ctx, s); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Seeded settings for provider: %s\n", s.Provider)
	}

	sessionID := uuid.New().String()
	now := time.Now()
	entries := []*model.TranscriptEntry{
		{ID: uuid.New().String(), SessionID: sessionID, Sender: model.SenderUser, Content: "/generate a fibonacci function", CreatedAt: now},
		{ID: uuid.New().String(), SessionID: sessionID, Sender: model.SenderAssistant, Content: "Response for '/generate a fibonacci function' using gpt-3.5-turbo: [Simulated AI Response]", IsCode: true, ModelName: "gpt-3.5-turbo", CreatedAt: now.Add(time.Second)},
	}
	for _, e := range entries {
		if err := repo.Transcripts().Append(ctx, e); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("\nSuccessfully seeded database!\n")
	fmt.Printf("Demo session: %s\n", sessionID)
	fmt.Printf("Fetch it with: GET /v1/history/%s\n", sessionID)
}
