// Package codes implements transfer-code generation on crypto/rand.
package codes

import (
	"crypto/rand"

	"neosafe/internal/domain/service"

	"github.com/pkg/errors"
)

// Alphabet is the closed symbol set for claim and property codes. Printed on
// physical labels, so it avoids lowercase and punctuation.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type codeGenerator struct{}

// NewCodeGenerator is the constructor for the crypto/rand-backed CodeGenerator.
func NewCodeGenerator() service.CodeGenerator {
	return &codeGenerator{}
}

// NewClaimCode returns a fresh 8-char claim code.
func (g *codeGenerator) NewClaimCode() (string, error) {
	return g.generate(service.ClaimCodeLength)
}

// NewPropertyCode returns a fresh 6-char property code.
func (g *codeGenerator) NewPropertyCode() (string, error) {
	return g.generate(service.PropertyCodeLength)
}

// generate draws length independent uniform samples from the alphabet using
// rejection sampling, so every symbol is equally likely and codes cannot be
// predicted from box identity or time.
func (g *codeGenerator) generate(length int) (string, error) {
	// Largest multiple of len(Alphabet) below 256; bytes at or above it would
	// bias the low symbols and are redrawn.
	limit := byte(256 - 256%len(Alphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}

		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
