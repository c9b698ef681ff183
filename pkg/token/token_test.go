package token

import (
	"boxgame_backend/internal/model"
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 42}

	tokenStr, err := GenerateAccessToken(user, secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := VerifyToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.ID != "42" {
		t.Errorf("claims.ID = %q, want %q", claims.ID, "42")
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("right"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := VerifyToken(tokenStr, []byte("wrong")); err == nil {
		t.Error("token verified with wrong secret")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	refresh, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	hash := HashRefreshToken(refresh)

	if !VerifyRefreshToken(refresh, hash) {
		t.Error("refresh token does not verify against its own hash")
	}
	if VerifyRefreshToken("another-token", hash) {
		t.Error("foreign refresh token verified against the hash")
	}
}
