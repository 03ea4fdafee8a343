package entity

import "time"

// Session — состояние одного чата: метки последнего анализа снимка.
// Перезаписывается целиком при каждом анализе.
type Session struct {
	ChatID       int64     // Telegram Chat ID
	LastFindings []string  // метки последнего анализа
	UpdatedAt    time.Time // момент последней записи
}

// NewSession создаёт состояние чата с текущим временем записи
func NewSession(chatID int64, findings []string) *Session {
	return &Session{
		ChatID:       chatID,
		LastFindings: findings,
		UpdatedAt:    time.Now(),
	}
}
