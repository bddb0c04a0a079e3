package service

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/dealspro/dealspro_api/internal/config"
	"github.com/dealspro/dealspro_api/internal/utils"
)

// AdminAuthService authenticates the single admin console account.
type AdminAuthService struct {
	email        string
	passwordHash string
	secret       []byte
	ttl          time.Duration
}

// NewAdminAuthService builds the service from the admin and JWT settings.
func NewAdminAuthService(cfg *config.Config) *AdminAuthService {
	return &AdminAuthService{
		email:        strings.ToLower(strings.TrimSpace(cfg.Admin.Email)),
		passwordHash: cfg.Admin.PasswordHash,
		secret:       []byte(cfg.JWTSecret),
		ttl:          cfg.JWTTTL,
	}
}

// Login verifies the credentials and returns a signed admin token.
func (s *AdminAuthService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	log.Debug().Str("email", email).Msg("Login attempt")

	if s.email == "" || s.passwordHash == "" {
		log.Warn().Msg("Admin account not configured")
		return "", utils.ErrInvalidCredentials
	}
	if email != s.email {
		log.Warn().Str("email", email).Msg("Unknown admin email")
		return "", utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.secret, s.email, s.ttl)
	if err != nil {
		return "", err
	}

	log.Info().Str("email", email).Msg("Login successful")
	return token, nil
}

// Verify parses an admin token issued by Login.
func (s *AdminAuthService) Verify(token string) (*utils.Claims, error) {
	return utils.ValidateJWT(s.secret, token)
}
