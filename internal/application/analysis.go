package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"brainscan-bot/internal/domain/entity"
	"brainscan-bot/internal/domain/port"
)

const (
	captionFindingsHeader = "**Analysis Complete.**\n\nPotential findings:\n"
	captionFindingsFooter = "\n\nYou can now ask me questions for more information."
	captionNoTumor        = "Analysis complete. The scan indicates no tumor was found."
	captionNothingFound   = "Analysis complete. I did not detect any of the conditions I'm trained to recognize in this scan."
)

// ScanReport — итог анализа снимка: подпись, находки и размеченная картинка
type ScanReport struct {
	Caption   string
	Findings  []entity.Finding
	NoTumor   bool
	Annotated []byte
}

// AnalysisService прогоняет снимок через детектор и готовит ответ пользователю
type AnalysisService struct {
	detector port.ScanDetector
	sessions port.SessionRepository
	log      *zap.SugaredLogger
}

// NewAnalysisService создаёт сервис анализа снимков
func NewAnalysisService(detector port.ScanDetector, sessions port.SessionRepository, log *zap.SugaredLogger) *AnalysisService {
	return &AnalysisService{
		detector: detector,
		sessions: sessions,
		log:      log,
	}
}

// Analyze запускает детекцию, обновляет состояние чата и собирает подпись.
// При ошибке детектора состояние чата остаётся нетронутым.
func (s *AnalysisService) Analyze(ctx context.Context, chatID int64, imageData []byte) (*ScanReport, error) {
	detections, err := s.detector.Detect(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	findings, noTumor := entity.Interpret(detections)

	// Состояние чата перезаписывается целиком: свежие метки или пусто.
	if err := s.sessions.Record(ctx, chatID, entity.Labels(findings)); err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}

	annotated, err := s.detector.Annotate(imageData, detections)
	if err != nil {
		// Без разметки текстовый итог всё равно уходит пользователю.
		s.log.Warnw("failed to annotate scan", "chat_id", chatID, "error", err)
		annotated = nil
	}

	s.log.Infow("processed scan",
		"chat_id", chatID,
		"findings", entity.Labels(findings),
		"no_tumor", noTumor,
	)

	return &ScanReport{
		Caption:   buildCaption(findings, noTumor),
		Findings:  findings,
		NoTumor:   noTumor,
		Annotated: annotated,
	}, nil
}

// buildCaption собирает подпись по трём веткам: находки, No-Tumor, ничего не распознано
func buildCaption(findings []entity.Finding, noTumor bool) string {
	switch {
	case len(findings) > 0:
		lines := make([]string, 0, len(findings))
		for _, finding := range findings {
			lines = append(lines, "• "+finding.Display())
		}
		return captionFindingsHeader + strings.Join(lines, "\n") + captionFindingsFooter
	case noTumor:
		return captionNoTumor
	default:
		return captionNothingFound
	}
}
