package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/config"
	"portfolio-backend/errs"
)

// authHandler issues admin session tokens. The dashboard is single-user:
// one bcrypt-hashed password, one JWT subject.
type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	passwordHash string
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func newAuthHandler(cfg config.Config) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		passwordHash: cfg.String("ADMIN_PASSWORD_HASH", ""),
		jwtSecret:    []byte(cfg.String("JWT_SECRET", "")),
		tokenTTL:     time.Duration(cfg.Int("TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.passwordHash == "" || len(h.jwtSecret) == 0 {
			h.responder.WriteError(w, errs.NewInternalError("admin login is not configured"))
			return
		}

		var body struct {
			Password string `json:"password"`
		}
		if err := decodeBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if body.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(body.Password)); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		now := time.Now()
		claims := jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to sign session token"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"token": token})
	}
}

type authMiddleware struct {
	responder Responder
	jwtSecret []byte
}

func newAuthMiddleware(cfg config.Config) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		jwtSecret: []byte(cfg.String("JWT_SECRET", "")),
	}
}

// authenticate gates the admin mutation surface behind a valid bearer token.
// Without a configured secret the gate stays shut; otherwise a token signed
// with the empty key would verify.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(m.jwtSecret) == 0 {
			m.responder.WriteError(w, errs.NewUnauthorizedError("admin auth is not configured"))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewUnauthorizedError("missing bearer token"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errs.ErrUnauthorized
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			m.responder.WriteError(w, errs.NewUnauthorizedError("invalid or expired token"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
