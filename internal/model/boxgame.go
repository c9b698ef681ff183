package model

import "time"

// BoxKind — вид скоринг-бокса. Задается при создании бокса и не меняется до конца партии
type BoxKind string

const (
	BoxKindMeanSquare BoxKind = "mean_square" // зеленый бокс
	BoxKindPairing    BoxKind = "pairing"     // синий бокс
)

// Стороны партии. Победитель определяется по наибольшему итоговому счету
const (
	PlayerA = "player_a"
	PlayerB = "player_b"
	Draw    = "draw"
)

type PlayInput struct {
	Weights []int
}

// TurnResult — результат одного хода: какой игрок ходил,
// какой бокс поглотил токен и какая оценка начислена
type TurnResult struct {
	Turn     int
	Player   string
	BoxIndex int
	BoxKind  BoxKind
	Weight   int
	Score    float64
}

// GameOutcome — полный результат одной партии
type GameOutcome struct {
	ScoreA     float64
	ScoreB     float64
	Winner     string
	Turns      []TurnResult
	BoxWeights [4]float64 // итоговые веса боксов в фиксированном порядке
}

// Game — сохраненная партия пользователя
type Game struct {
	ID        string
	UserID    int
	Weights   []int
	ScoreA    float64
	ScoreB    float64
	Winner    string
	TurnCount int
	PlayedAt  time.Time
}

// GameStats — агрегированная статистика по всем сыгранным партиям
type GameStats struct {
	TotalGames  int
	TotalTurns  int
	WinsA       int
	WinsB       int
	Draws       int
	AvgScoreA   float64
	AvgScoreB   float64
	WindowGames int     // количество партий в скользящем окне
	WindowAvg   float64 // средний суммарный счет партии в окне
}
