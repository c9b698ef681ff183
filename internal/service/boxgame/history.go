package boxgame

import (
	"boxgame_backend/internal/middleware"
	"boxgame_backend/internal/model"
	"context"
	"errors"
)

// History возвращает последние сохраненные партии текущего пользователя
func (s *serv) History(ctx context.Context, limit int) ([]model.Game, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Лимит страницы ограничен конфигурацией
	if limit <= 0 || limit > s.cfg.HistoryPageLimit() {
		limit = s.cfg.HistoryPageLimit()
	}

	return s.gameRepo.ListGamesByUser(ctx, userID, limit)
}

// Stats возвращает срез агрегированной статистики по всем партиям
func (s *serv) Stats(ctx context.Context) (*model.GameStats, error) {
	stats := s.statsRepo.Snapshot()
	return &stats, nil
}
