package bootstrap

import (
	"log"

	"college-chatbot-be/internal/config"
	"college-chatbot-be/internal/controller"
	"college-chatbot-be/internal/pkg/logger"
	"college-chatbot-be/internal/repository/memory"
	"college-chatbot-be/internal/service"
	"college-chatbot-be/pkg/answer"
	"college-chatbot-be/pkg/complaintlog"
	"college-chatbot-be/pkg/embedding"
	"college-chatbot-be/pkg/faq"
	"college-chatbot-be/pkg/llm/factory"
	"college-chatbot-be/pkg/vectorindex"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	ComplaintController controller.IComplaintController

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. AI Providers
	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.EmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. Pipeline Components
	faqLoader := faq.NewLoader(cfg.Faq.SheetURL, cfg.Faq.CacheTTL)
	indexBuilder := vectorindex.NewBuilder(embeddingProvider, cfg.Ai.TopK, cfg.Ai.IndexCacheTTL)
	answerChain := answer.NewChain(llmProvider)

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// Complaint Log
	complaintWriter := complaintlog.NewWriter(cfg.App.ComplaintLogPath)

	// 4. Services
	answerPipeline := service.NewAnswerPipeline(faqLoader, indexBuilder, answerChain)
	chatService := service.NewChatService(
		sessionRepo,
		answerPipeline,
		sysLogger,
		cfg.App.SessionTimeout,
	)
	complaintService := service.NewComplaintService(sessionRepo, complaintWriter, sysLogger)

	// 5. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		ComplaintController: controller.NewComplaintController(complaintService),

		Logger: sysLogger,
	}
}
