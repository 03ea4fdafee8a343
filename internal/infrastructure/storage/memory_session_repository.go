package storage

import (
	"context"
	"sync"
	"time"

	"brainscan-bot/internal/domain/entity"
	"brainscan-bot/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище состояний чатов.
// Записи старше ttl считаются устаревшими и удаляются фоновой чисткой,
// чтобы таблица не росла бесконечно.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]*entity.Session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemorySessionRepository создаёт новое in-memory хранилище и запускает чистку
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}

	r := &MemorySessionRepository{
		sessions: make(map[int64]*entity.Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go r.sweep()

	return r
}

// Record сохраняет метки последнего анализа; пустой список удаляет запись
func (r *MemorySessionRepository) Record(ctx context.Context, chatID int64, labels []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(labels) == 0 {
		delete(r.sessions, chatID)
		return nil
	}

	r.sessions[chatID] = entity.NewSession(chatID, labels)

	return nil
}

// Read возвращает метки последнего анализа; устаревшая запись равносильна отсутствующей
func (r *MemorySessionRepository) Read(ctx context.Context, chatID int64) ([]string, error) {
	r.mu.RLock()
	session, exists := r.sessions[chatID]
	r.mu.RUnlock()

	if !exists || time.Since(session.UpdatedAt) > r.ttl {
		return nil, nil
	}

	return session.LastFindings, nil
}

// Close останавливает фоновую чистку
func (r *MemorySessionRepository) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// sweep периодически удаляет устаревшие записи
func (r *MemorySessionRepository) sweep() {
	ticker := time.NewTicker(r.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			r.mu.Lock()
			for chatID, session := range r.sessions {
				if now.Sub(session.UpdatedAt) > r.ttl {
					delete(r.sessions, chatID)
				}
			}
			r.mu.Unlock()
		}
	}
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
