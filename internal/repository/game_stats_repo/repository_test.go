package game_stats_repo

import (
	"boxgame_backend/internal/model"
	"testing"
)

func TestRecordGameAggregates(t *testing.T) {
	repo := NewGameStatsRepository()

	repo.RecordGame(13.0, 25.0, 4, model.PlayerB)
	repo.RecordGame(155.0, 366.25, 8, model.PlayerB)
	repo.RecordGame(0.0, 0.0, 0, model.Draw)

	stats := repo.Snapshot()

	if stats.TotalGames != 3 {
		t.Errorf("TotalGames = %d, want 3", stats.TotalGames)
	}
	if stats.TotalTurns != 12 {
		t.Errorf("TotalTurns = %d, want 12", stats.TotalTurns)
	}
	if stats.WinsA != 0 || stats.WinsB != 2 || stats.Draws != 1 {
		t.Errorf("wins = (%d, %d, %d), want (0, 2, 1)", stats.WinsA, stats.WinsB, stats.Draws)
	}
	if want := (13.0 + 155.0 + 0.0) / 3; stats.AvgScoreA != want {
		t.Errorf("AvgScoreA = %v, want %v", stats.AvgScoreA, want)
	}
	if stats.WindowGames != 3 {
		t.Errorf("WindowGames = %d, want 3", stats.WindowGames)
	}
}

func TestWindowIsBounded(t *testing.T) {
	repo := NewGameStatsRepository()

	for i := 0; i < defaultWindowSize+20; i++ {
		repo.RecordGame(1.0, 2.0, 2, model.PlayerB)
	}

	stats := repo.Snapshot()
	if stats.WindowGames != defaultWindowSize {
		t.Errorf("WindowGames = %d, want %d", stats.WindowGames, defaultWindowSize)
	}
	if stats.TotalGames != defaultWindowSize+20 {
		t.Errorf("TotalGames = %d, want %d", stats.TotalGames, defaultWindowSize+20)
	}
}

func TestSnapshotOfEmptyRepo(t *testing.T) {
	repo := NewGameStatsRepository()

	stats := repo.Snapshot()
	if stats.TotalGames != 0 || stats.AvgScoreA != 0 || stats.WindowAvg != 0 {
		t.Errorf("empty snapshot = %+v, want zeroes", stats)
	}
}
