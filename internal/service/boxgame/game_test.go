package boxgame

import (
	"boxgame_backend/internal/model"
	"reflect"
	"testing"
)

func TestRunFibonacci4(t *testing.T) {
	outcome := Run([]int{1, 1, 2, 3})

	if outcome.ScoreA != 13.0 {
		t.Errorf("ScoreA = %v, want 13.0", outcome.ScoreA)
	}
	if outcome.ScoreB != 25.0 {
		t.Errorf("ScoreB = %v, want 25.0", outcome.ScoreB)
	}
	if outcome.Winner != model.PlayerB {
		t.Errorf("Winner = %q, want %q", outcome.Winner, model.PlayerB)
	}

	// Вес каждого бокса = начальный + сумма поглощенного им
	wantWeights := [4]float64{0.0 + 1, 0.1 + 1, 0.2 + 2, 0.3 + 3}
	if outcome.BoxWeights != wantWeights {
		t.Errorf("BoxWeights = %v, want %v", outcome.BoxWeights, wantWeights)
	}
}

func TestRunFibonacci8(t *testing.T) {
	outcome := Run([]int{1, 1, 2, 3, 5, 8, 13, 21})

	if outcome.ScoreA != 155.0 {
		t.Errorf("ScoreA = %v, want 155.0", outcome.ScoreA)
	}
	if outcome.ScoreB != 366.25 {
		t.Errorf("ScoreB = %v, want 366.25", outcome.ScoreB)
	}
}

func TestRunEmptyInput(t *testing.T) {
	outcome := Run(nil)

	if outcome.ScoreA != 0.0 || outcome.ScoreB != 0.0 {
		t.Errorf("scores = (%v, %v), want (0, 0)", outcome.ScoreA, outcome.ScoreB)
	}
	if outcome.Winner != model.Draw {
		t.Errorf("Winner = %q, want %q", outcome.Winner, model.Draw)
	}
	if len(outcome.Turns) != 0 {
		t.Errorf("len(Turns) = %d, want 0", len(outcome.Turns))
	}

	// Боксы остаются на начальных весах
	wantWeights := [4]float64{0.0, 0.1, 0.2, 0.3}
	if outcome.BoxWeights != wantWeights {
		t.Errorf("BoxWeights = %v, want %v", outcome.BoxWeights, wantWeights)
	}
}

func TestRunTurnAlternation(t *testing.T) {
	weights := []int{4, 2, 0, 7, 1, 9, 3}
	outcome := Run(weights)

	if len(outcome.Turns) != len(weights) {
		t.Fatalf("len(Turns) = %d, want %d", len(outcome.Turns), len(weights))
	}

	// Игрок A ходит на четных ходах, игрок B на нечетных, в порядке списка
	for i, turn := range outcome.Turns {
		want := model.PlayerA
		if i%2 != 0 {
			want = model.PlayerB
		}
		if turn.Player != want {
			t.Errorf("turn %d: player = %q, want %q", i, turn.Player, want)
		}
		if turn.Turn != i {
			t.Errorf("turn %d: Turn field = %d, want %d", i, turn.Turn, i)
		}
		if turn.Weight != weights[i] {
			t.Errorf("turn %d: weight = %d, want %d", i, turn.Weight, weights[i])
		}
	}

	// Сумма оценок по ходам равна сумме итоговых счетов
	var sumA, sumB float64
	for _, turn := range outcome.Turns {
		if turn.Player == model.PlayerA {
			sumA += turn.Score
		} else {
			sumB += turn.Score
		}
	}
	if sumA != outcome.ScoreA || sumB != outcome.ScoreB {
		t.Errorf("per-turn sums = (%v, %v), totals = (%v, %v)", sumA, sumB, outcome.ScoreA, outcome.ScoreB)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	weights := []int{1, 1, 2, 3, 5, 8, 13, 21}

	first := Run(weights)
	second := Run(weights)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same weights differ:\n%+v\n%+v", first, second)
	}
}

func TestRunZeroWeightsAccepted(t *testing.T) {
	// Нулевые веса допустимы: mean_square бокс дает нулевую оценку,
	// pairing бокс считает pairing(0, 0) = 0
	outcome := Run([]int{0, 0})

	if outcome.ScoreA != 0.0 || outcome.ScoreB != 0.0 {
		t.Errorf("scores = (%v, %v), want (0, 0)", outcome.ScoreA, outcome.ScoreB)
	}
}
