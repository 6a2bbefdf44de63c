package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for stored records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TokenGenerator produces opaque session tokens.
type TokenGenerator struct {
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// Generate returns a random UUIDv4. Unlike v7 it carries no timestamp.
func (g *TokenGenerator) Generate() string {
	return uuid.NewString()
}
