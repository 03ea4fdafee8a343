package port

import (
	"context"

	"brainscan-bot/internal/domain/entity"
)

// ScanDetector интерфейс детектора опухолей на снимке
type ScanDetector interface {
	// Detect анализирует снимок и возвращает сырые детекции
	Detect(ctx context.Context, imageData []byte) ([]entity.Detection, error)

	// Annotate создаёт изображение с подсветкой найденных областей
	Annotate(imageData []byte, detections []entity.Detection) ([]byte, error)
}
