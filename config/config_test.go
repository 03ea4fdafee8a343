package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "runs/training/brain_tumor_yolov8/weights/best.onnx", cfg.ModelPath)
	require.Equal(t, float32(0.25), cfg.ConfThreshold)
	require.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("MODEL_PATH", "weights/best.onnx")
	t.Setenv("CONF_THRESHOLD", "0.5")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, "key", cfg.OpenAIKey)
	require.Equal(t, "weights/best.onnx", cfg.ModelPath)
	require.Equal(t, float32(0.5), cfg.ConfThreshold)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
}
