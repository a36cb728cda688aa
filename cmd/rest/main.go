package main

import (
	"context"
	"log"

	"college-chatbot-be/internal/bootstrap"
	"college-chatbot-be/internal/config"
	"college-chatbot-be/internal/server"
	"college-chatbot-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// The hosted provider key is the one hard startup requirement.
	if cfg.Ai.LLMProvider == "openai" || cfg.Ai.EmbeddingProvider == "openai" {
		if cfg.Keys.OpenAI == "" {
			log.Fatal("❌ OPENAI_API_KEY not found in environment")
		}
	}

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Initialize Server
	srv := server.New(cfg, container)

	// 4. Run Server
	log.Fatal(srv.Run())
}
