package game_stats_repo

import (
	"boxgame_backend/internal/model"
	repoModel "boxgame_backend/internal/repository/game_stats_repo/model"
	"sync"
)

const (
	// defaultWindowSize Размер скользящего окна последних партий
	defaultWindowSize = 100
)

// Реализация репозитория для хранения агрегированной статистики партий.
// Статистика живет в памяти процесса и защищена мьютексом,
// так как обновляется из конкурентных HTTP запросов
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.AggregateState
}

// NewGameStatsRepository Конструктор для создания нового репозитория с начальным состоянием
func NewGameStatsRepository() *StatsRepo {
	return &StatsRepo{
		state: repoModel.AggregateState{
			Window:     make([]repoModel.GameResult, 0, defaultWindowSize),
			WindowSize: defaultWindowSize,
		},
	}
}

// RecordGame Обновление статистики после завершенной партии
func (r *StatsRepo) RecordGame(scoreA, scoreB float64, turns int, winner string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalGames++
	r.state.TotalTurns += turns
	r.state.TotalScoreA += scoreA
	r.state.TotalScoreB += scoreB

	switch winner {
	case model.PlayerA:
		r.state.WinsA++
	case model.PlayerB:
		r.state.WinsB++
	default:
		r.state.Draws++
	}

	// Добавляем партию в окно
	r.state.Window = append(r.state.Window, repoModel.GameResult{
		ScoreA: scoreA,
		ScoreB: scoreB,
		Turns:  turns,
	})

	// Поддерживаем размер окна
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}
}

// Snapshot Получение среза текущей статистики.
// Возвращает копию, состояние наружу не отдается
func (r *StatsRepo) Snapshot() model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := model.GameStats{
		TotalGames:  r.state.TotalGames,
		TotalTurns:  r.state.TotalTurns,
		WinsA:       r.state.WinsA,
		WinsB:       r.state.WinsB,
		Draws:       r.state.Draws,
		WindowGames: len(r.state.Window),
	}

	if r.state.TotalGames > 0 {
		stats.AvgScoreA = r.state.TotalScoreA / float64(r.state.TotalGames)
		stats.AvgScoreB = r.state.TotalScoreB / float64(r.state.TotalGames)
	}

	// Средний суммарный счет партии в окне
	var windowTotal float64
	for _, game := range r.state.Window {
		windowTotal += game.ScoreA + game.ScoreB
	}
	if len(r.state.Window) > 0 {
		stats.WindowAvg = windowTotal / float64(len(r.state.Window))
	}

	return stats
}
