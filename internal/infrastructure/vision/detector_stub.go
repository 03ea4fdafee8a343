//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"brainscan-bot/internal/domain/entity"
)

// YOLODetector — заглушка детектора для сборки без OpenCV
type YOLODetector struct {
	inputSize     int
	confThreshold float32
	nmsThreshold  float32
}

// NewYOLODetector создаёт детектор-заглушку (без OpenCV)
func NewYOLODetector(modelPath string, confThreshold float32) (*YOLODetector, error) {
	_ = modelPath
	return &YOLODetector{
		inputSize:     640,
		confThreshold: confThreshold,
		nmsThreshold:  0.45,
	}, nil
}

// Close ничего не освобождает в сборке без OpenCV
func (d *YOLODetector) Close() error {
	return nil
}

// Detect возвращает ошибку, если сборка без тега gocv
func (d *YOLODetector) Detect(ctx context.Context, imageData []byte) ([]entity.Detection, error) {
	_ = ctx
	_ = imageData
	return nil, errors.New("gocv build tag is not enabled")
}

// Annotate возвращает ошибку, если сборка без тега gocv
func (d *YOLODetector) Annotate(imageData []byte, detections []entity.Detection) ([]byte, error) {
	_ = imageData
	_ = detections
	return nil, errors.New("gocv build tag is not enabled")
}
