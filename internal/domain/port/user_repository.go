package port

import (
	"context"

	"sensor-inspector/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей бота
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// UpdateState обновляет состояние пользователя
	UpdateState(ctx context.Context, userID int64, state entity.UserState) error

	// UpdateSession применяет fn к настройкам проверки пользователя
	UpdateSession(ctx context.Context, userID int64, fn func(*entity.Session) error) error
}
