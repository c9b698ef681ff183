package app

import (
	authAPI "boxgame_backend/internal/api/auth"
	boxgameAPI "boxgame_backend/internal/api/boxgame"
	"boxgame_backend/internal/config"
	"boxgame_backend/internal/config/env"
	"boxgame_backend/internal/middleware"
	"boxgame_backend/internal/repository"
	"boxgame_backend/internal/repository/auth_repo"
	"boxgame_backend/internal/repository/game_repo"
	"boxgame_backend/internal/repository/game_stats_repo"
	"boxgame_backend/internal/repository/user_repo"
	"boxgame_backend/internal/service"
	"boxgame_backend/internal/service/auth"
	"boxgame_backend/internal/service/boxgame"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// JWT bits
	jwtConfig config.JWTConfig

	// Auth bits
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Boxgame bits
	gameCfg       config.GameConfig
	gameRepo      repository.GameRepository
	gameStatsRepo repository.GameStatsRepository
	gameServ      service.BoxGameService
	gameHand      *boxgameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}

		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) GameRepository(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx))
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) GameStatsRepository() repository.GameStatsRepository {
	if sp.gameStatsRepo == nil {
		sp.gameStatsRepo = game_stats_repo.NewGameStatsRepository()
	}
	return sp.gameStatsRepo
}

func (sp *ServiceProvider) BoxGameService(ctx context.Context) service.BoxGameService {
	if sp.gameServ == nil {
		sp.gameServ = boxgame.NewBoxGameService(
			sp.GameCfg(),
			sp.GameRepository(ctx),
			sp.UserRepo(ctx),
			sp.GameStatsRepository(),
			sp.TXManager(ctx),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) BoxGameHandler(ctx context.Context) *boxgameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = boxgameAPI.NewHandler(boxgameAPI.HandlerDeps{Serv: sp.BoxGameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Game endpoints (только для авторизованных)
		gameHandler := sp.BoxGameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Post("/play", gameHandler.Play)
			rr.Get("/history", gameHandler.History)
			rr.Get("/stats", gameHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
