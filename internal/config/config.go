package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig — лимиты на входные данные партии.
// Состав боксов, их виды и начальные веса — константы движка, не конфигурация.
type GameConfig interface {
	MaxTurns() int
	MaxTokenWeight() int
	HistoryPageLimit() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
