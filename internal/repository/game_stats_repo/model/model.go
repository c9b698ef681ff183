package model

// GameResult — результат одной партии внутри скользящего окна
type GameResult struct {
	ScoreA float64
	ScoreB float64
	Turns  int
}

// AggregateState — накопленная статистика по всем сыгранным партиям
type AggregateState struct {
	TotalGames  int
	TotalTurns  int
	WinsA       int
	WinsB       int
	Draws       int
	TotalScoreA float64
	TotalScoreB float64

	// Скользящее окно последних партий
	Window     []GameResult
	WindowSize int
}
