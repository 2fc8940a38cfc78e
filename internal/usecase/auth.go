package usecase

import (
	"context"
	"crypto/subtle"
	"strings"

	"booking-calendar/internal/pkg/config"
	"booking-calendar/internal/pkg/errs"
	"booking-calendar/internal/pkg/jwt"
	"booking-calendar/internal/pkg/password"
)

// AuthUseCase is the shared-password gate: one credential for the whole
// application, exchanged for an editor capability token. There are no
// user accounts.
type AuthUseCase interface {
	Login(ctx context.Context, candidate string) (string, error)
}

type authUseCaseImpl struct {
	cfg        config.AuthConfig
	jwtService *jwt.Service
}

func NewAuthUseCase(cfg config.AuthConfig, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, candidate string) (string, error) {
	if !a.matches(candidate) {
		return "", errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(jwt.RoleEditor)
	if err != nil {
		return "", errs.Wrap(err, "token generation failed")
	}
	return token, nil
}

func (a *authUseCaseImpl) matches(candidate string) bool {
	if strings.HasPrefix(a.cfg.Password, "$2") {
		return password.ComparePassword(a.cfg.Password, candidate) == nil
	}
	// Plain-text configuration, local development only.
	return subtle.ConstantTimeCompare([]byte(a.cfg.Password), []byte(candidate)) == 1
}
