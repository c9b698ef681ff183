package repository

import (
	"boxgame_backend/internal/model"
	"context"
)

type GameRepository interface {
	CreateGame(ctx context.Context, game *model.Game) error
	ListGamesByUser(ctx context.Context, userID int, limit int) ([]model.Game, error)
}

type GameStatsRepository interface {
	RecordGame(scoreA, scoreB float64, turns int, winner string)
	Snapshot() model.GameStats
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetGamesPlayed(ctx context.Context, id int) (int, error)
	UpdateGamesPlayed(ctx context.Context, id int, count int) error
}
