package boxgame

import (
	"boxgame_backend/internal/middleware"
	"boxgame_backend/internal/model"
	"boxgame_backend/internal/repository/game_stats_repo"
	"context"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Фейковый менеджер транзакций: просто выполняет функцию без БД
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeGameRepo struct {
	games     []model.Game
	lastLimit int
}

func (r *fakeGameRepo) CreateGame(_ context.Context, game *model.Game) error {
	r.games = append(r.games, *game)
	return nil
}

func (r *fakeGameRepo) ListGamesByUser(_ context.Context, userID int, limit int) ([]model.Game, error) {
	r.lastLimit = limit
	var games []model.Game
	for _, g := range r.games {
		if g.UserID == userID {
			games = append(games, g)
		}
	}
	return games, nil
}

type fakeUserRepo struct {
	played map[int]int
}

func (r *fakeUserRepo) CreateUser(_ context.Context, _ *model.User) (int, error) {
	return 0, nil
}

func (r *fakeUserRepo) GetUserByLogin(_ context.Context, _ string) (*model.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetGamesPlayed(_ context.Context, id int) (int, error) {
	return r.played[id], nil
}

func (r *fakeUserRepo) UpdateGamesPlayed(_ context.Context, id int, count int) error {
	r.played[id] = count
	return nil
}

type testGameConfig struct{}

func (testGameConfig) MaxTurns() int         { return 16 }
func (testGameConfig) MaxTokenWeight() int   { return 100 }
func (testGameConfig) HistoryPageLimit() int { return 10 }

func newTestService() (*serv, *fakeGameRepo, *fakeUserRepo, *game_stats_repo.StatsRepo) {
	gameRepo := &fakeGameRepo{}
	userRepo := &fakeUserRepo{played: make(map[int]int)}
	statsRepo := game_stats_repo.NewGameStatsRepository()

	s := &serv{
		cfg:       testGameConfig{},
		gameRepo:  gameRepo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		txManager: fakeTxManager{},
	}

	return s, gameRepo, userRepo, statsRepo
}

func TestPlayPersistsGameAndUpdatesStats(t *testing.T) {
	s, gameRepo, userRepo, statsRepo := newTestService()
	ctx := middleware.WithUserID(context.Background(), 7)

	outcome, err := s.Play(ctx, model.PlayInput{Weights: []int{1, 1, 2, 3}})
	if err != nil {
		t.Fatalf("Play returned error: %v", err)
	}

	if outcome.ScoreA != 13.0 || outcome.ScoreB != 25.0 {
		t.Errorf("scores = (%v, %v), want (13, 25)", outcome.ScoreA, outcome.ScoreB)
	}

	if len(gameRepo.games) != 1 {
		t.Fatalf("saved games = %d, want 1", len(gameRepo.games))
	}
	saved := gameRepo.games[0]
	if saved.UserID != 7 {
		t.Errorf("saved UserID = %d, want 7", saved.UserID)
	}
	if saved.Winner != model.PlayerB {
		t.Errorf("saved Winner = %q, want %q", saved.Winner, model.PlayerB)
	}
	if saved.TurnCount != 4 {
		t.Errorf("saved TurnCount = %d, want 4", saved.TurnCount)
	}
	if saved.ID == "" {
		t.Error("saved game has empty ID")
	}

	if userRepo.played[7] != 1 {
		t.Errorf("games played = %d, want 1", userRepo.played[7])
	}

	stats := statsRepo.Snapshot()
	if stats.TotalGames != 1 || stats.TotalTurns != 4 || stats.WinsB != 1 {
		t.Errorf("stats = %+v, want 1 game, 4 turns, 1 win of player B", stats)
	}
}

func TestPlayRejectsNegativeWeight(t *testing.T) {
	s, gameRepo, _, _ := newTestService()
	ctx := middleware.WithUserID(context.Background(), 7)

	_, err := s.Play(ctx, model.PlayInput{Weights: []int{1, -2, 3}})
	if err == nil {
		t.Fatal("Play accepted a negative weight")
	}
	if len(gameRepo.games) != 0 {
		t.Errorf("rejected game was saved: %d games", len(gameRepo.games))
	}
}

func TestPlayRejectsOversizedWeight(t *testing.T) {
	s, _, _, _ := newTestService()
	ctx := middleware.WithUserID(context.Background(), 7)

	_, err := s.Play(ctx, model.PlayInput{Weights: []int{101}})
	if err == nil {
		t.Fatal("Play accepted a weight above the configured max")
	}
}

func TestPlayRejectsTooManyWeights(t *testing.T) {
	s, _, _, _ := newTestService()
	ctx := middleware.WithUserID(context.Background(), 7)

	weights := make([]int, 17)
	_, err := s.Play(ctx, model.PlayInput{Weights: weights})
	if err == nil {
		t.Fatal("Play accepted more weights than the configured max turns")
	}
}

func TestPlayRequiresUserInContext(t *testing.T) {
	s, _, _, _ := newTestService()

	_, err := s.Play(context.Background(), model.PlayInput{Weights: []int{1}})
	if err == nil {
		t.Fatal("Play succeeded without user id in context")
	}
}

func TestHistoryUsesConfiguredLimit(t *testing.T) {
	s, gameRepo, _, _ := newTestService()
	ctx := middleware.WithUserID(context.Background(), 7)

	// Нулевой и завышенный лимиты заменяются лимитом из конфигурации
	if _, err := s.History(ctx, 0); err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if gameRepo.lastLimit != 10 {
		t.Errorf("limit = %d, want 10 (configured default)", gameRepo.lastLimit)
	}

	if _, err := s.History(ctx, 1000); err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if gameRepo.lastLimit != 10 {
		t.Errorf("limit = %d, want 10 (configured cap)", gameRepo.lastLimit)
	}

	if _, err := s.History(ctx, 3); err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if gameRepo.lastLimit != 3 {
		t.Errorf("limit = %d, want 3", gameRepo.lastLimit)
	}
}
