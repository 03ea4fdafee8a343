package container

import (
	"go.uber.org/zap"

	app "brainscan-bot/internal/application"
	"brainscan-bot/internal/domain/port"
)

type Container struct {
	Analysis *app.AnalysisService
	Advisor  *app.AdvisorService
}

func New(sessions port.SessionRepository, detector port.ScanDetector, generator port.TextGenerator, log *zap.SugaredLogger) *Container {
	return &Container{
		Analysis: app.NewAnalysisService(detector, sessions, log),
		Advisor:  app.NewAdvisorService(generator, sessions, log),
	}
}
