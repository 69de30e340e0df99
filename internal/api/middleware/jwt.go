package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type authFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type adminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// AdminAuth verifies the bearer token issued by the admin login endpoint.
// The dashboard is only as protected as this middleware; nothing client-side
// is trusted.
func AdminAuth() gin.HandlerFunc {
	secret := os.Getenv("JWT_SECRET")

	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, authFailure{Error: "admin auth is not configured"})
			return
		}

		auth := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if !strings.HasPrefix(auth, "Bearer ") || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, authFailure{Error: "missing bearer token"})
			return
		}

		claims := &adminClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || tok == nil || !tok.Valid || claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, authFailure{Error: "invalid token"})
			return
		}

		c.Set("admin_user", claims.Subject)
		c.Next()
	}
}
