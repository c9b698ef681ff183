package boxgame

import "boxgame_backend/internal/model"

// boxCount — в партии всегда ровно 4 бокса
const boxCount = 4

// boxCollection — фиксированный состав боксов партии.
// Индексы 0 и 1 — mean-square боксы, 2 и 3 — pairing боксы.
// Состав и порядок не меняются до конца партии.
type boxCollection [boxCount]scoringBox

func newBoxCollection() boxCollection {
	return boxCollection{
		newScoringBox(model.BoxKindMeanSquare, 0.0),
		newScoringBox(model.BoxKindMeanSquare, 0.1),
		newScoringBox(model.BoxKindPairing, 0.2),
		newScoringBox(model.BoxKindPairing, 0.3),
	}
}

// lightest возвращает индекс бокса с наименьшим текущим весом.
// При равных весах выбирается бокс с меньшим индексом (стабильный скан слева направо).
func (c *boxCollection) lightest() int {
	min := 0
	for i := 1; i < boxCount; i++ {
		if c[i].currentWeight() < c[min].currentWeight() {
			min = i
		}
	}
	return min
}
