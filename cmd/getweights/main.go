// Утилита скачивает веса модели заранее, чтобы первый запуск бота
// не упирался в сеть.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"brainscan-bot/config"
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

	if _, err := os.Stat(cfg.ModelPath); err == nil {
		log.Infow("model weights already exist, skipping download", "path", cfg.ModelPath)
		return
	}

	log.Infow("downloading model weights", "url", cfg.WeightsURL, "path", cfg.ModelPath)
	if err := download(cfg.WeightsURL, cfg.ModelPath); err != nil {
		log.Fatalw("failed to download model weights", "url", cfg.WeightsURL, "error", err)
	}

	log.Infow("model weights downloaded", "path", cfg.ModelPath)
}

// download сохраняет файл по URL во временный файл и атомарно переименовывает
func download(url, dest string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("download weights: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download weights: unexpected status %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create weights dir: %w", err)
	}

	tmp := dest + ".part"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create weights file: %w", err)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("write weights file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close weights file: %w", err)
	}

	return os.Rename(tmp, dest)
}
