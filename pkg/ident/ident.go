package ident

import (
	"strings"

	"github.com/google/uuid"
)

const usageIDLen = 8

// NewUsageID returns a short token scoping an instance's public
// address within its tool namespace. Collisions are possible and are
// handled by the caller's retry loop.
func NewUsageID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return raw[:usageIDLen]
}

// NewReferralCode returns a shareable referral code for a new client.
func NewReferralCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:10])
}

// NewIdempotencyKey ties retries of one logical purchase together so
// a repeated request cannot debit the wallet twice.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
