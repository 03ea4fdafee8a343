package port

import "context"

// TextGenerator интерфейс генерации текста внешней языковой моделью.
// Все реализации должны быть взаимозаменяемыми.
type TextGenerator interface {
	// Generate выполняет один запрос генерации по готовому промпту
	Generate(ctx context.Context, prompt string) (string, error)
}
