package bootstrap

import (
	"log"

	"my-diary-be/internal/config"
	"my-diary-be/internal/controller"
	"my-diary-be/internal/pkg/logger"
	"my-diary-be/internal/repository/memory"
	"my-diary-be/internal/repository/unitofwork"
	"my-diary-be/internal/service"
	chatContext "my-diary-be/pkg/chat/context"
	"my-diary-be/pkg/chat/prompt"
	"my-diary-be/pkg/chat/reply"
	"my-diary-be/pkg/llm/factory"
	pktNats "my-diary-be/pkg/nats"
	"my-diary-be/pkg/vision"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DiaryController    controller.IDiaryController
	PhotoController    controller.IPhotoController
	PersonController   controller.IPersonController
	LocationController controller.ILocationController
	ChatController     controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger  logger.ILogger
	NatsPub *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional infrastructure; the API works without it.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. AI Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	captioner := vision.NewGeminiCaptioner(cfg.Keys.GoogleGemini, cfg.Ai.VisionModel)

	// 4. Conversation Core
	contextBuilder := chatContext.NewBuilder(uowFactory)
	promptCompiler := prompt.NewCompiler()
	replyGenerator := reply.NewGenerator(llmProvider)
	turnGuard := memory.NewTurnGuard()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.CaptionTopic)

	diaryService := service.NewDiaryService(uowFactory, natsPub, sysLogger)
	photoService := service.NewPhotoService(uowFactory, publisherService, cfg.App.UploadDir, sysLogger)
	personService := service.NewPersonService(uowFactory)
	locationService := service.NewLocationService(uowFactory)
	conversationService := service.NewConversationService(
		uowFactory,
		contextBuilder,
		promptCompiler,
		replyGenerator,
		turnGuard,
		sysLogger,
	)

	consumerService := service.NewCaptionConsumerService(
		pubSub,
		cfg.Keys.CaptionTopic,
		uowFactory,
		captioner,
		cfg.App.UploadDir,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		DiaryController:    controller.NewDiaryController(diaryService),
		PhotoController:    controller.NewPhotoController(photoService),
		PersonController:   controller.NewPersonController(personService),
		LocationController: controller.NewLocationController(locationService),
		ChatController:     controller.NewChatController(conversationService),

		ConsumerService: consumerService,

		Logger:  sysLogger,
		NatsPub: natsPub,
	}
}
