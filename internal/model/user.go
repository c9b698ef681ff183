package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID          int
	Name        string
	Login       string
	Password    string
	GamesPlayed int
}

type UserClaims struct {
	jwt.RegisteredClaims
}
