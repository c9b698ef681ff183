package main

import (
	"boxgame_backend/internal/service/boxgame"
	"fmt"
	"log"
	"os"
	"strconv"
)

// Оффлайн режим: разыгрывает одну партию по весам токенов из аргументов
// командной строки и печатает итоговые счета игроков
func main() {
	weights := make([]int, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		w, err := strconv.Atoi(arg)
		if err != nil || w < 0 {
			log.Fatalf("invalid token weight %q: expected non-negative integer", arg)
		}
		weights = append(weights, w)
	}

	outcome := boxgame.Run(weights)

	fmt.Printf("Scores: player A %v, player B %v\n", outcome.ScoreA, outcome.ScoreB)
}
