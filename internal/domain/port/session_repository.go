package port

import "context"

// SessionRepository интерфейс хранилища состояний чатов
type SessionRepository interface {
	// Record запоминает метки последнего анализа; пустой список очищает состояние
	Record(ctx context.Context, chatID int64, labels []string) error

	// Read возвращает метки последнего анализа, не изменяя состояние.
	// Для неизвестного или устаревшего чата возвращает nil.
	Read(ctx context.Context, chatID int64) ([]string, error)
}
