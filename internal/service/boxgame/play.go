package boxgame

import (
	"boxgame_backend/internal/middleware"
	"boxgame_backend/internal/model"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Play разыгрывает одну партию для текущего пользователя,
// сохраняет результат и обновляет агрегированную статистику
func (s *serv) Play(ctx context.Context, input model.PlayInput) (*model.GameOutcome, error) {
	// Валидация входного списка весов
	if err := s.validateWeights(input.Weights); err != nil {
		return nil, err
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Сама партия детерминирована и БД не трогает
	outcome := Run(input.Weights)

	// Транзакция: сохраняем партию и увеличиваем счетчик сыгранных партий
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		game := &model.Game{
			ID:        uuid.NewString(),
			UserID:    userID,
			Weights:   input.Weights,
			ScoreA:    outcome.ScoreA,
			ScoreB:    outcome.ScoreB,
			Winner:    outcome.Winner,
			TurnCount: len(input.Weights),
			PlayedAt:  time.Now(),
		}
		if err := s.gameRepo.CreateGame(txCtx, game); err != nil {
			log.Println(err)
			return errors.New("failed to save game")
		}

		played, err := s.userRepo.GetGamesPlayed(txCtx, userID)
		if err != nil {
			return errors.New("failed to get games played")
		}
		if err := s.userRepo.UpdateGamesPlayed(txCtx, userID, played+1); err != nil {
			return errors.New("failed to update games played")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Статистика хранится в памяти и обновляется вне транзакции
	s.statsRepo.RecordGame(outcome.ScoreA, outcome.ScoreB, len(input.Weights), outcome.Winner)

	return outcome, nil
}

// validateWeights — проверка списка весов до запуска партии.
// Отрицательные веса отклоняются явно, а не считаются молча
func (s *serv) validateWeights(weights []int) error {
	if len(weights) > s.cfg.MaxTurns() {
		return fmt.Errorf("too many token weights: %d, max %d", len(weights), s.cfg.MaxTurns())
	}

	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("token weight at index %d must be non-negative", i)
		}
		if w > s.cfg.MaxTokenWeight() {
			return fmt.Errorf("token weight at index %d exceeds max %d", i, s.cfg.MaxTokenWeight())
		}
	}

	return nil
}
