package boxgame

import "time"

type PlayRequest struct {
	Weights []int `json:"weights"` // Веса токенов по порядку ходов (неотрицательные целые)
}

type PlayResponse struct {
	ScoreA     float64      `json:"score_a"`     // Итоговый счет игрока A
	ScoreB     float64      `json:"score_b"`     // Итоговый счет игрока B
	Winner     string       `json:"winner"`      // player_a | player_b | draw
	Turns      []TurnResult `json:"turns"`       // Разбивка по ходам
	BoxWeights [4]float64   `json:"box_weights"` // Итоговые веса боксов
}

type TurnResult struct {
	Turn     int     `json:"turn"`      // Номер хода (с нуля)
	Player   string  `json:"player"`    // Кто ходил
	BoxIndex int     `json:"box_index"` // Какой бокс поглотил токен (0-3)
	BoxKind  string  `json:"box_kind"`  // mean_square | pairing
	Weight   int     `json:"weight"`    // Вес токена
	Score    float64 `json:"score"`     // Оценка хода
}

type GameSummary struct {
	ID        string    `json:"id"`
	Weights   []int     `json:"weights"`
	ScoreA    float64   `json:"score_a"`
	ScoreB    float64   `json:"score_b"`
	Winner    string    `json:"winner"`
	TurnCount int       `json:"turn_count"`
	PlayedAt  time.Time `json:"played_at"`
}

type StatsResponse struct {
	TotalGames  int     `json:"total_games"`
	TotalTurns  int     `json:"total_turns"`
	WinsA       int     `json:"wins_a"`
	WinsB       int     `json:"wins_b"`
	Draws       int     `json:"draws"`
	AvgScoreA   float64 `json:"avg_score_a"`
	AvgScoreB   float64 `json:"avg_score_b"`
	WindowGames int     `json:"window_games"` // Кол-во партий в скользящем окне
	WindowAvg   float64 `json:"window_avg"`   // Средний суммарный счет партии в окне
}
