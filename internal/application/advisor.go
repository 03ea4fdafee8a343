package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"brainscan-bot/internal/domain/port"
)

const (
	// disclaimer добавляется к каждому ответу ассистента, включая ответ об ошибке
	disclaimer = "\n\n**Important Disclaimer:** I am an AI assistant, not a medical professional. This information is for educational purposes only. Please consult a qualified doctor for diagnosis and medical advice."

	fallbackAnswer = "I'm having trouble accessing my knowledge base right now. Please try again later."

	genericContext = "A user is asking a general question about brain tumors."

	promptTemplate = "You are a helpful medical information AI. %s Answer their question in a clear, simple, and reassuring tone. Provide general information only.\n\nUser's Question: '%s'"
)

// AdvisorService отвечает на текстовые вопросы с учётом последнего анализа чата
type AdvisorService struct {
	generator port.TextGenerator
	sessions  port.SessionRepository
	log       *zap.SugaredLogger
}

// NewAdvisorService создаёт сервис ответов на вопросы
func NewAdvisorService(generator port.TextGenerator, sessions port.SessionRepository, log *zap.SugaredLogger) *AdvisorService {
	return &AdvisorService{
		generator: generator,
		sessions:  sessions,
		log:       log,
	}
}

// Answer строит промпт с контекстом чата и спрашивает внешнюю модель.
// Ошибка генерации наружу не выходит: пользователь получает фиксированный ответ.
func (s *AdvisorService) Answer(ctx context.Context, chatID int64, question string) string {
	lastFindings, err := s.sessions.Read(ctx, chatID)
	if err != nil {
		s.log.Warnw("failed to read session", "chat_id", chatID, "error", err)
	}

	promptContext := genericContext
	if len(lastFindings) > 0 {
		promptContext = fmt.Sprintf(
			"A user's brain scan analysis has indicated a potential '%s'. The user is now asking a follow-up question.",
			strings.Join(lastFindings, ", "),
		)
	}

	prompt := fmt.Sprintf(promptTemplate, promptContext, question)

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Errorw("text generation failed", "chat_id", chatID, "error", err)
		return fallbackAnswer + disclaimer
	}

	s.log.Infow("answered text query", "chat_id", chatID)

	return answer + disclaimer
}
