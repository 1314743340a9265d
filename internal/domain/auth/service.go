package auth

import "context"

// Session carries the tokens issued on login; the refresh token travels
// only in an HttpOnly cookie.
type Session struct {
	Tokens           TokenResponse
	RefreshToken     string
	RefreshExpiresAt int64
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error)
	// Logout revokes the refresh token; unknown tokens are ignored.
	Logout(refreshToken string)
}
