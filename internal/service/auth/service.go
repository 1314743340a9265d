package auth

import (
	"context"
	"errors"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/auth"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	personRepo person.Repository
	jwtService jwt.Service
}

func NewAuthService(personRepo person.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{personRepo: personRepo, jwtService: jwtService}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.Session, error) {
	p, err := s.personRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, person.ErrPersonNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !p.IsActive {
		return nil, auth.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(p.ID, p.Email, p.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(p.ID)
	if err != nil {
		return nil, err
	}

	return &auth.Session{
		Tokens: auth.TokenResponse{
			AccessToken: accessToken,
			ExpiresAt:   accessExpiresAt,
			Person:      person.ToResponse(*p),
		},
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return nil, auth.ErrRefreshTokenRevoked
	}

	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}
	personID, ok := claims["user_id"].(string)
	if !ok || personID == "" {
		return nil, auth.ErrInvalidToken
	}

	p, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if !p.IsActive {
		return nil, auth.ErrAccountInactive
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(p.ID, p.Email, p.Role)
	if err != nil {
		return nil, err
	}

	return &auth.RefreshResponse{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

func (s *AuthServiceImpl) Logout(refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}
