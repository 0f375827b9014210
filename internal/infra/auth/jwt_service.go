// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"neosafe/config"
	"neosafe/internal/domain/entity"
	"neosafe/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultAccessTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It validates tokens minted by the identity provider with the shared access secret.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    defaultAccessTTL,
	}, nil
}

// GenerateAccessToken signs a short-lived access token for the principal.
func (s *jwtService) GenerateAccessToken(principal entity.Principal) (string, error) {
	claims := jwt.MapClaims{
		"sub":  principal.ID.String(),      // Subject (who the token is for)
		"role": principal.Role.String(),    // Single role, immutable per request
		"iat":  time.Now().Unix(),          // Issued At
		"exp":  time.Now().Add(s.accessTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateAccessToken checks the token signature and expiry and returns the embedded principal.
func (s *jwtService) ValidateAccessToken(tokenString string) (entity.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return entity.Principal{}, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return entity.Principal{}, errors.New("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.Principal{}, errors.New("unexpected token claims type")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return entity.Principal{}, errors.New("subject missing from token")
	}
	principalID, err := uuid.Parse(sub)
	if err != nil {
		return entity.Principal{}, errors.Wrap(err, "invalid subject in token")
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return entity.Principal{}, errors.New("role missing from token")
	}
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return entity.Principal{}, errors.Errorf("unknown role in token: %s", roleStr)
	}

	return entity.Principal{ID: principalID, Role: role}, nil
}
