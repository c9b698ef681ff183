package converter

import (
	dto "boxgame_backend/internal/api/dto/boxgame"
	"boxgame_backend/internal/model"
)

func ToPlayInput(req dto.PlayRequest) model.PlayInput {
	return model.PlayInput{
		Weights: req.Weights,
	}
}

func ToPlayResponse(outcome model.GameOutcome) dto.PlayResponse {
	return dto.PlayResponse{
		ScoreA:     outcome.ScoreA,
		ScoreB:     outcome.ScoreB,
		Winner:     outcome.Winner,
		Turns:      toTurnResults(outcome.Turns),
		BoxWeights: outcome.BoxWeights,
	}
}

func toTurnResults(turns []model.TurnResult) []dto.TurnResult {
	result := make([]dto.TurnResult, len(turns))
	for i, t := range turns {
		result[i] = dto.TurnResult{
			Turn:     t.Turn,
			Player:   t.Player,
			BoxIndex: t.BoxIndex,
			BoxKind:  string(t.BoxKind),
			Weight:   t.Weight,
			Score:    t.Score,
		}
	}
	return result
}

func ToGameSummaries(games []model.Game) []dto.GameSummary {
	result := make([]dto.GameSummary, len(games))
	for i, g := range games {
		result[i] = dto.GameSummary{
			ID:        g.ID,
			Weights:   g.Weights,
			ScoreA:    g.ScoreA,
			ScoreB:    g.ScoreB,
			Winner:    g.Winner,
			TurnCount: g.TurnCount,
			PlayedAt:  g.PlayedAt,
		}
	}
	return result
}

func ToStatsResponse(stats model.GameStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalGames:  stats.TotalGames,
		TotalTurns:  stats.TotalTurns,
		WinsA:       stats.WinsA,
		WinsB:       stats.WinsB,
		Draws:       stats.Draws,
		AvgScoreA:   stats.AvgScoreA,
		AvgScoreB:   stats.AvgScoreB,
		WindowGames: stats.WindowGames,
		WindowAvg:   stats.WindowAvg,
	}
}
