package codes

import (
	"strings"
	"testing"

	"neosafe/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaimCode_LengthAndAlphabet(t *testing.T) {
	gen := NewCodeGenerator()

	for range 100 {
		code, err := gen.NewClaimCode()
		require.NoError(t, err)
		assert.Len(t, code, service.ClaimCodeLength)
		for _, r := range code {
			assert.Contains(t, Alphabet, string(r))
		}
	}
}

func TestNewPropertyCode_LengthAndAlphabet(t *testing.T) {
	gen := NewCodeGenerator()

	code, err := gen.NewPropertyCode()
	require.NoError(t, err)
	assert.Len(t, code, service.PropertyCodeLength)
	for _, r := range code {
		assert.Contains(t, Alphabet, string(r))
	}
}

// Probabilistic sanity check: with a 36^8 keyspace, 10k draws colliding would
// indicate a broken random source.
func TestNewClaimCode_NoDuplicatesIn10k(t *testing.T) {
	gen := NewCodeGenerator()

	seen := make(map[string]struct{}, 10_000)
	for range 10_000 {
		code, err := gen.NewClaimCode()
		require.NoError(t, err)
		_, dup := seen[code]
		require.False(t, dup, "duplicate claim code generated: %s", code)
		seen[code] = struct{}{}
	}
}

func TestNewClaimCode_CoversAlphabet(t *testing.T) {
	gen := NewCodeGenerator()

	var sb strings.Builder
	for range 200 {
		code, err := gen.NewClaimCode()
		require.NoError(t, err)
		sb.WriteString(code)
	}

	// 1600 samples over 36 symbols: every symbol should appear.
	drawn := sb.String()
	for _, r := range Alphabet {
		assert.Contains(t, drawn, string(r))
	}
}
