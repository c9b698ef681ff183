package env

import (
	"boxgame_backend/internal/config"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type gameConfig struct {
	maxTurns         int
	maxTokenWeight   int
	historyPageLimit int
}

// Структура yaml файла с лимитами партии
type gameYAML struct {
	Game struct {
		MaxTurns         int `yaml:"max_turns"`
		MaxTokenWeight   int `yaml:"max_token_weight"`
		HistoryPageLimit int `yaml:"history_page_limit"`
	} `yaml:"game"`
}

// NewGameConfigFromYAML — читает лимиты партии из yaml файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if parsed.Game.MaxTurns <= 0 {
		return nil, fmt.Errorf("game config: max_turns must be positive")
	}
	if parsed.Game.MaxTokenWeight <= 0 {
		return nil, fmt.Errorf("game config: max_token_weight must be positive")
	}
	if parsed.Game.HistoryPageLimit <= 0 {
		return nil, fmt.Errorf("game config: history_page_limit must be positive")
	}

	return &gameConfig{
		maxTurns:         parsed.Game.MaxTurns,
		maxTokenWeight:   parsed.Game.MaxTokenWeight,
		historyPageLimit: parsed.Game.HistoryPageLimit,
	}, nil
}

func (cfg *gameConfig) MaxTurns() int {
	return cfg.maxTurns
}

func (cfg *gameConfig) MaxTokenWeight() int {
	return cfg.maxTokenWeight
}

func (cfg *gameConfig) HistoryPageLimit() int {
	return cfg.historyPageLimit
}
