package boxgame

import "boxgame_backend/internal/model"

// recentWindowSize — размер скользящего окна mean-square бокса
const recentWindowSize = 3

// scoringBox — бокс, поглощающий веса токенов.
// Вид скоринга фиксируется при создании и не меняется до конца партии.
type scoringBox struct {
	kind   model.BoxKind
	weight float64 // текущий вес: начальный + сумма всех поглощенных

	// Для mean_square: до 3 последних поглощенных весов (старейший вытесняется)
	recent []float64

	// Для pairing: минимальный и максимальный поглощенные веса
	smallest float64
	largest  float64
	absorbed bool
}

func newScoringBox(kind model.BoxKind, initialWeight float64) scoringBox {
	return scoringBox{kind: kind, weight: initialWeight}
}

// currentWeight — текущий суммарный вес бокса
func (b *scoringBox) currentWeight() float64 {
	return b.weight
}

// absorb поглощает вес токена, добавляет его к весу бокса
// и возвращает оценку этого поглощения
func (b *scoringBox) absorb(weight float64) float64 {
	var score float64
	switch b.kind {
	case model.BoxKindMeanSquare:
		score = b.scoreMeanSquare(weight)
	case model.BoxKindPairing:
		score = b.scorePairing(weight)
	}

	b.weight += weight
	return score
}

// scoreMeanSquare — оценка равна квадрату среднего из не более чем
// 3 последних поглощенных весов (если их меньше 3 — из всех поглощенных)
func (b *scoringBox) scoreMeanSquare(weight float64) float64 {
	b.recent = append(b.recent, weight)
	if len(b.recent) > recentWindowSize {
		b.recent = b.recent[1:]
	}

	var sum float64
	for _, w := range b.recent {
		sum += w
	}
	mean := sum / float64(len(b.recent))

	return mean * mean
}

// scorePairing — оценка равна функции спаривания Кантора от минимального
// и максимального весов, поглощенных боксом за всю партию.
// Вес внутри диапазона [smallest, largest] границы не меняет.
func (b *scoringBox) scorePairing(weight float64) float64 {
	if !b.absorbed {
		b.smallest = weight
		b.largest = weight
		b.absorbed = true
	} else if weight < b.smallest {
		b.smallest = weight
	} else if weight > b.largest {
		b.largest = weight
	}

	return cantorPairing(b.smallest, b.largest)
}

// cantorPairing — функция спаривания Кантора: pairing(0, 1) = 2
func cantorPairing(a, b float64) float64 {
	sum := a + b
	return sum*(sum+1)/2 + b
}
