package session

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"curior/internal/entities"
	"curior/pkg/logger"
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware authenticates requests with an HS256 bearer token. The
// token subject is the user id and the custom "role" claim carries the
// caller role.
func Middleware(log handlerLogger, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := parse(r.Header.Get("Authorization"), secret)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("rejected unauthenticated request")

				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "invalid or missing bearer token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
		})
	}
}

func parse(header, secret string) (Session, error) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return Session{}, fmt.Errorf("missing bearer token")
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Session{}, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return Session{}, fmt.Errorf("invalid token")
	}

	role := entities.RoleType(c.Role)
	if !role.Valid() {
		return Session{}, fmt.Errorf("unknown role %q", c.Role)
	}
	if c.Subject == "" {
		return Session{}, fmt.Errorf("token has no subject")
	}

	return Session{
		UserID: c.Subject,
		Role:   role,
	}, nil
}
