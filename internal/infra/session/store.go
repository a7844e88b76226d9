package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kiranchintala/app-booking/internal/domain"
)

// Store in-memory хранилище черновиков бронирования
// Один черновик на сессию; время жизни ограничено TTL, фоновая горутина
// удаляет истёкшие сессии. Хранилище намеренно не персистентное:
// перезапуск процесса сбрасывает все черновики
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

type entry struct {
	draft     *domain.BookingDraft
	expiresAt time.Time
}

// NewStore создает хранилище сессий и запускает фоновую очистку
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}

	go s.janitor(cleanupInterval)

	return s
}

// Create создает пустой черновик для нового booking-сеанса пользователя
func (s *Store) Create(userID string) *domain.BookingDraft {
	now := time.Now()

	draft := &domain.BookingDraft{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Services:  []domain.Service{},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[draft.SessionID] = &entry{
		draft:     draft,
		expiresAt: now.Add(s.ttl),
	}

	return draft.Clone()
}

// Get возвращает копию черновика по ID сессии
func (s *Store) Get(sessionID string) (*domain.BookingDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, ErrSessionNotFound
	}

	return e.draft.Clone(), nil
}

// Update применяет мутацию к черновику под блокировкой и инкрементирует Version
// Если expectedVersion задан и не совпадает с текущей версией, обновление
// отклоняется с ErrVersionConflict - так отставший писатель не затирает
// более новое состояние
// Каждое обновление продлевает TTL сессии
func (s *Store) Update(sessionID string, expectedVersion *int64, mutate func(*domain.BookingDraft) error) (*domain.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, ErrSessionNotFound
	}

	if expectedVersion != nil && *expectedVersion != e.draft.Version {
		return nil, ErrVersionConflict
	}

	if err := mutate(e.draft); err != nil {
		return nil, err
	}

	e.draft.Version++
	e.draft.UpdatedAt = time.Now()
	e.expiresAt = e.draft.UpdatedAt.Add(s.ttl)

	return e.draft.Clone(), nil
}

// Delete удаляет сессию
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

// Len возвращает количество живых сессий
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Close останавливает фоновую очистку
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

func (s *Store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purgeExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Store) purgeExpired() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
