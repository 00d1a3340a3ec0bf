package app

import (
	"context"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	if _, err := s.repo.Get(ctx, userID, chatID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateState(ctx, userID, state); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingRaw)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

func (s *UserService) UpdateSession(ctx context.Context, userID, chatID int64, fn func(*entity.Session) error) (*entity.User, error) {
	if _, err := s.repo.Get(ctx, userID, chatID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSession(ctx, userID, fn); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, chatID)
}
