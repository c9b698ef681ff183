package service

import (
	"boxgame_backend/internal/model"
	"context"
)

type BoxGameService interface {
	Play(ctx context.Context, input model.PlayInput) (*model.GameOutcome, error)
	History(ctx context.Context, limit int) ([]model.Game, error)
	Stats(ctx context.Context) (*model.GameStats, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
