package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const DefaultTokenTTL = 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, input models.Credentials) (string, error)
}

type authService struct {
	adminPasswordHash []byte
	jwtSecret         []byte
	tokenTTL          time.Duration
	now               func() time.Time
}

func NewAuthService(adminPasswordHash, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		adminPasswordHash: []byte(adminPasswordHash),
		jwtSecret:         []byte(jwtSecret),
		tokenTTL:          tokenTTL,
		now:               time.Now,
	}
}

// Login checks the admin password and issues a signed token with the admin role.
func (s *authService) Login(ctx context.Context, input models.Credentials) (string, error) {
	if input.Password == "" {
		return "", ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to compare password hash: %w", err)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"role": string(models.RoleAdmin),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
