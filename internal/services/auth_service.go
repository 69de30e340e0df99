package services

import (
	"context"
	"crypto/subtle"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/davrk/leadbot/internal/utils"
)

const tokenTTL = 12 * time.Hour

// AuthService verifies admin credentials server-side and issues short-lived
// tokens. Credentials and the signing secret come from the environment, not
// from anything shipped to the browser.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, err error)
}

type authService struct{}

func NewAuthService() AuthService {
	return &authService{}
}

func (s *authService) Login(_ context.Context, username, password string) (string, error) {
	const op = "AuthService.Login"

	if username == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "username and password are required", nil)
	}

	wantUser := os.Getenv("ADMIN_USERNAME")
	secret := os.Getenv("JWT_SECRET")
	if wantUser == "" || secret == "" {
		return "", utils.E(utils.CodeInternal, op, "admin auth is not configured", nil)
	}

	if subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) != 1 || !passwordMatches(password) {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{RegisteredClaims: claims, Role: "admin"})

	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return signed, nil
}

type adminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// passwordMatches checks against ADMIN_PASSWORD_HASH (bcrypt) when set,
// falling back to a constant-time compare with ADMIN_PASSWORD.
func passwordMatches(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return utils.CheckPassword(hash, password) == nil
	}
	if plain := os.Getenv("ADMIN_PASSWORD"); plain != "" {
		return subtle.ConstantTimeCompare([]byte(password), []byte(plain)) == 1
	}
	return false
}
