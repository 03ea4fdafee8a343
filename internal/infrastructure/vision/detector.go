//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"sync"

	"gocv.io/x/gocv"

	"brainscan-bot/internal/domain/entity"
)

// YOLODetector выполняет инференс YOLOv8 (ONNX) через модуль DNN OpenCV
type YOLODetector struct {
	net           gocv.Net
	inputSize     int
	confThreshold float32
	nmsThreshold  float32
	mu            sync.Mutex // сеть не потокобезопасна, один forward за раз
}

// NewYOLODetector загружает веса модели из ONNX-файла
func NewYOLODetector(modelPath string, confThreshold float32) (*YOLODetector, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load model weights from %q", modelPath)
	}

	return &YOLODetector{
		net:           net,
		inputSize:     640,
		confThreshold: confThreshold,
		nmsThreshold:  0.45,
	}, nil
}

// Close освобождает ресурсы сети
func (d *YOLODetector) Close() error {
	return d.net.Close()
}

// Detect запускает модель и возвращает найденные области с классами
func (d *YOLODetector) Detect(ctx context.Context, imageData []byte) ([]entity.Detection, error) {
	_ = ctx
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(d.inputSize, d.inputSize), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.mu.Lock()
	d.net.SetInput(blob, "")
	output := d.net.Forward("")
	d.mu.Unlock()
	defer output.Close()

	return d.decodeOutput(output, mat.Cols(), mat.Rows())
}

// decodeOutput разбирает выход YOLOv8 [1, 4+классы, N] в детекции с координатами исходного снимка
func (d *YOLODetector) decodeOutput(output gocv.Mat, imageWidth, imageHeight int) ([]entity.Detection, error) {
	sizes := output.Size()
	if len(sizes) != 3 {
		return nil, fmt.Errorf("unexpected model output shape: %v", sizes)
	}
	dims := sizes[1]
	candidates := sizes[2]

	// Транспонируем в [N, 4+классы], чтобы читать построчно.
	reshaped := output.Reshape(1, dims)
	defer reshaped.Close()
	rows := reshaped.T()
	defer rows.Close()

	scaleX := float32(imageWidth) / float32(d.inputSize)
	scaleY := float32(imageHeight) / float32(d.inputSize)

	var boxes []image.Rectangle
	var scores []float32
	var classIDs []int
	for i := 0; i < candidates; i++ {
		bestClass := -1
		bestScore := float32(0)
		for c := 4; c < dims; c++ {
			if score := rows.GetFloatAt(i, c); score > bestScore {
				bestScore = score
				bestClass = c - 4
			}
		}
		if bestScore < d.confThreshold {
			continue
		}

		// Центр и размеры бокса в координатах входа сети.
		cx := rows.GetFloatAt(i, 0) * scaleX
		cy := rows.GetFloatAt(i, 1) * scaleY
		w := rows.GetFloatAt(i, 2) * scaleX
		h := rows.GetFloatAt(i, 3) * scaleY

		boxes = append(boxes, image.Rect(int(cx-w/2), int(cy-h/2), int(cx+w/2), int(cy+h/2)))
		scores = append(scores, bestScore)
		classIDs = append(classIDs, bestClass)
	}

	if len(boxes) == 0 {
		return nil, nil
	}

	indices := gocv.NMSBoxes(boxes, scores, d.confThreshold, d.nmsThreshold)
	detections := make([]entity.Detection, 0, len(indices))
	for _, idx := range indices {
		box := boxes[idx]
		detections = append(detections, entity.Detection{
			ClassID:    classIDs[idx],
			Confidence: float64(scores[idx]),
			Box: entity.Box{
				X:      box.Min.X,
				Y:      box.Min.Y,
				Width:  box.Dx(),
				Height: box.Dy(),
			},
		})
	}

	return detections, nil
}

// Annotate рисует рамки и подписи классов поверх снимка и возвращает JPEG
func (d *YOLODetector) Annotate(imageData []byte, detections []entity.Detection) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	green := color.RGBA{G: 255, A: 255}
	for _, det := range detections {
		rect := image.Rect(det.Box.X, det.Box.Y, det.Box.X+det.Box.Width, det.Box.Y+det.Box.Height)
		gocv.Rectangle(&mat, rect, green, 2)

		label := fmt.Sprintf("%s %.2f", entity.ClassName(det.ClassID), det.Confidence)
		gocv.PutText(&mat, label, image.Pt(det.Box.X, det.Box.Y-6), gocv.FontHersheySimplex, 0.6, green, 2)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decodeToMat превращает байты изображения в gocv.Mat
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}
