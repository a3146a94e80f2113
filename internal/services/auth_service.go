package services

import (
	"github.com/Malcolmdebono/Bucket-list-application/internal/config"
	jwtutil "github.com/Malcolmdebono/Bucket-list-application/pkg/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single injected admin principal and
// issues bearer tokens. Credentials come from configuration only; there
// is no user table behind this.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login checks the credentials against the injected username and bcrypt
// hash and returns a signed token on success.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.cfg.AdminUsername {
		logrus.WithField("username", username).Warn("Login attempt with unknown username")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		logrus.WithField("username", username).Warn("Login attempt with wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := jwtutil.GenerateToken(username, s.cfg.JWTSecret, s.cfg.TokenExpiry)
	if err != nil {
		return "", err
	}

	logrus.WithField("username", username).Info("User logged in successfully")
	return token, nil
}
