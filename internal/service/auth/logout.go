package auth

import (
	"context"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Удаление сессии. Access токен доживает свой TTL
	return s.authRepo.DeleteSession(ctx, sessionID)
}
