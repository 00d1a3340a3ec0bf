package storage

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей и их настроек
type MemoryUserRepository struct {
	mu       sync.RWMutex
	users    map[int64]*entity.User
	defaults entity.Session
}

// NewMemoryUserRepository создаёт новое in-memory хранилище.
// defaults копируется в сессию каждого нового пользователя.
func NewMemoryUserRepository(defaults entity.Session) *MemoryUserRepository {
	return &MemoryUserRepository{
		users:    make(map[int64]*entity.User),
		defaults: defaults,
	}
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.RLock()
	user, exists := r.users[userID]
	r.mu.RUnlock()

	if exists {
		return user, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if user, exists := r.users[userID]; exists {
		return user, nil
	}

	session := r.defaults
	session.Params = maps.Clone(r.defaults.Params)
	newUser := entity.NewUser(userID, chatID, session)
	r.users[userID] = newUser

	return newUser, nil
}

// UpdateState обновляет состояние пользователя под блокировкой
func (r *MemoryUserRepository) UpdateState(ctx context.Context, userID int64, state entity.UserState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return fmt.Errorf("user %d not found", userID)
	}
	user.SetState(state)

	return nil
}

// UpdateSession меняет настройки под блокировкой; при ошибке fn настройки не меняются.
func (r *MemoryUserRepository) UpdateSession(ctx context.Context, userID int64, fn func(*entity.Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return fmt.Errorf("user %d not found", userID)
	}

	draft := user.Session
	draft.Params = maps.Clone(user.Session.Params)
	if draft.Params == nil {
		draft.Params = make(map[string]any)
	}
	if err := fn(&draft); err != nil {
		return err
	}
	user.Session = draft

	return nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
