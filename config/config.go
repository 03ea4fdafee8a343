package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config настройки бота. Дефолты перекрываются .env файлом и переменными окружения.
type Config struct {
	TelegramToken string        `env:"TELEGRAM_BOT_TOKEN"` // токен бота, обязателен
	OpenAIKey     string        `env:"OPENAI_API_KEY"`     // ключ API генерации текста, обязателен
	ModelPath     string        `env:"MODEL_PATH"`         // путь к ONNX-весам детектора
	WeightsURL    string        `env:"WEIGHTS_URL"`        // откуда cmd/getweights скачивает веса
	ConfThreshold float32       `env:"CONF_THRESHOLD"`     // порог уверенности детектора
	SessionTTL    time.Duration `env:"SESSION_TTL"`        // время жизни состояния чата
}

// Defaults возвращает конфигурацию с предустановленными значениями
func Defaults() *Config {
	return &Config{
		ModelPath:     "runs/training/brain_tumor_yolov8/weights/best.onnx",
		WeightsURL:    "https://github.com/ultralytics/assets/releases/download/v8.3.0/yolov8n.onnx",
		ConfThreshold: 0.25,
		SessionTTL:    time.Hour,
	}
}

// Load загружает конфигурацию из .env и окружения
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
