package main

import (
	"os"

	"go.uber.org/zap"

	"brainscan-bot/config"
	telegram "brainscan-bot/internal/api"
	"brainscan-bot/internal/container"
	"brainscan-bot/internal/infrastructure/ai"
	"brainscan-bot/internal/infrastructure/storage"
	"brainscan-bot/internal/infrastructure/vision"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	// Без учётных данных и весов модели бот не стартует.
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		log.Fatalw("model weights not found", "path", cfg.ModelPath, "error", err)
	}

	detector, err := vision.NewYOLODetector(cfg.ModelPath, cfg.ConfThreshold)
	if err != nil {
		log.Fatalw("failed to load detection model", "error", err)
	}
	defer detector.Close()
	log.Info("brain tumor detection model loaded")

	generator := ai.NewOpenAIGenerator(cfg.OpenAIKey)

	// Хранилище состояний чатов с TTL
	sessions := storage.NewMemorySessionRepository(cfg.SessionTTL)
	defer sessions.Close()

	// Собираем сервисы приложения
	services := container.New(sessions, detector, generator, log)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, services, log)
	if err != nil {
		log.Fatalw("failed to create bot", "error", err)
	}

	log.Info("bot is running")
	if err := bot.Run(); err != nil {
		log.Fatalw("bot stopped", "error", err)
	}
}
