package game_repo

import (
	"boxgame_backend/internal/model"
	"boxgame_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "games"
	colID        = "id"
	colUserID    = "user_id"
	colWeights   = "weights"
	colScoreA    = "score_a"
	colScoreB    = "score_b"
	colWinner    = "winner"
	colTurnCount = "turn_count"
	colPlayedAt  = "played_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewGameRepository(dbc *pgxpool.Pool) repository.GameRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateGame - сохраняет завершенную партию в БД
func (r *repo) CreateGame(ctx context.Context, game *model.Game) error {
	// Веса храним в колонке bigint[]
	weights := make([]int64, len(game.Weights))
	for i, w := range game.Weights {
		weights[i] = int64(w)
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUserID, colWeights, colScoreA, colScoreB, colWinner, colTurnCount, colPlayedAt).
		Values(game.ID, game.UserID, weights, game.ScoreA, game.ScoreB, game.Winner, game.TurnCount, game.PlayedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// ListGamesByUser - возвращает последние партии пользователя, новые первыми
func (r *repo) ListGamesByUser(ctx context.Context, userID int, limit int) ([]model.Game, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colWeights, colScoreA, colScoreB, colWinner, colTurnCount, colPlayedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colPlayedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]model.Game, 0, limit)
	for rows.Next() {
		var game model.Game
		var weights []int64
		err = rows.Scan(&game.ID, &game.UserID, &weights, &game.ScoreA, &game.ScoreB, &game.Winner, &game.TurnCount, &game.PlayedAt)
		if err != nil {
			return nil, err
		}

		game.Weights = make([]int, len(weights))
		for i, w := range weights {
			game.Weights[i] = int(w)
		}

		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return games, nil
}
