// Package service defines domain service contracts implemented by the infra layer.
package service

import (
	"neosafe/internal/domain/entity"
)

// TokenService validates access tokens issued by the external identity
// provider and derives the request principal from them. Token issuance and
// account management live outside this service; GenerateAccessToken exists
// for the provider-compatible signing path used in development and tests.
type TokenService interface {
	// GenerateAccessToken signs a short-lived access token for the principal.
	GenerateAccessToken(principal entity.Principal) (string, error)

	// ValidateAccessToken checks the token signature and expiry and returns
	// the embedded principal.
	ValidateAccessToken(tokenString string) (entity.Principal, error)
}
