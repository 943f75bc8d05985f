package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUsageID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewUsageID()
		assert.Len(t, id, 8)
		assert.NotContains(t, id, "-")
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}

func TestNewReferralCode(t *testing.T) {
	code := NewReferralCode()
	assert.Len(t, code, 10)
	assert.Equal(t, code, string([]rune(code)), "code must be plain ascii")
	assert.NotEqual(t, code, NewReferralCode())
}

func TestNewIdempotencyKey(t *testing.T) {
	assert.NotEqual(t, NewIdempotencyKey(), NewIdempotencyKey())
}
