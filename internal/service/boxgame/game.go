package boxgame

import "boxgame_backend/internal/model"

// player — накопленный счет одного игрока. Обнуляется только созданием нового
type player struct {
	score float64
}

// Run разыгрывает одну партию целиком: каждый вес из списка используется ровно
// один раз в порядке списка, игроки ходят по очереди, игрок A начинает.
// Партия детерминирована: один и тот же список весов всегда дает
// одну и ту же последовательность ходов и итоговые счета.
func Run(weights []int) *model.GameOutcome {
	boxes := newBoxCollection()

	var players [2]player

	outcome := &model.GameOutcome{
		Turns: make([]model.TurnResult, 0, len(weights)),
	}

	// Явный счетчик ходов: четный ход — игрок A, нечетный — игрок B
	for turn, w := range weights {
		idx := boxes.lightest()
		score := boxes[idx].absorb(float64(w))

		side := model.PlayerA
		if turn%2 != 0 {
			side = model.PlayerB
		}
		players[turn%2].score += score

		outcome.Turns = append(outcome.Turns, model.TurnResult{
			Turn:     turn,
			Player:   side,
			BoxIndex: idx,
			BoxKind:  boxes[idx].kind,
			Weight:   w,
			Score:    score,
		})
	}

	outcome.ScoreA = players[0].score
	outcome.ScoreB = players[1].score
	outcome.Winner = winner(outcome.ScoreA, outcome.ScoreB)
	for i := range boxes {
		outcome.BoxWeights[i] = boxes[i].currentWeight()
	}

	return outcome
}

// winner — побеждает игрок с наибольшим итоговым счетом
func winner(scoreA, scoreB float64) string {
	switch {
	case scoreA > scoreB:
		return model.PlayerA
	case scoreB > scoreA:
		return model.PlayerB
	default:
		return model.Draw
	}
}
