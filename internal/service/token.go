package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/inkpost/backend/internal/apperror"
	"github.com/inkpost/backend/internal/config"
	"github.com/inkpost/backend/internal/model"
)

// Claims is the payload of an issued identity token. Expiry is always
// issuance time plus the configured validity; a claims value is never
// mutated after creation.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 identity tokens. Secret and
// validity are fixed at construction and never re-read, so the service
// holds no mutable state and is safe for concurrent use.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.JWTSecret),
		validity: time.Duration(cfg.ExpirationDays) * 24 * time.Hour,
	}
}

// Issue signs a token for the given account identity.
func (s *TokenService) Issue(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperror.NewJwtError("failed to sign token", err)
	}
	return signed, nil
}

// Verify checks signature integrity and expiry. Malformed input, a
// wrong algorithm, a bad signature and a past expiry all collapse into
// the same failure. No leeway is applied to the clock check.
func (s *TokenService) Verify(tokenString string) (*model.AuthUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, apperror.NewJwtError("invalid token", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperror.NewJwtError("invalid token subject", err)
	}

	return &model.AuthUser{ID: userID, Username: claims.Username}, nil
}
