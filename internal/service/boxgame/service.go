package boxgame

import (
	"boxgame_backend/internal/config"
	"boxgame_backend/internal/repository"
	"boxgame_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.GameConfig
	gameRepo  repository.GameRepository
	userRepo  repository.UserRepository
	statsRepo repository.GameStatsRepository
	txManager trm.Manager
}

// NewBoxGameService Создать сервис партий с боксами
func NewBoxGameService(
	cfg config.GameConfig,
	gameRepo repository.GameRepository,
	userRepo repository.UserRepository,
	statsRepo repository.GameStatsRepository,
	txManager trm.Manager,
) service.BoxGameService {
	return &serv{
		cfg:       cfg,
		gameRepo:  gameRepo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}
