// Package uuid is a thin generator indirection so IDs can be pinned in tests.
package uuid

import "github.com/google/uuid"

// Generator produces unique string IDs
type Generator interface {
	New() string
}

// GoogleGenerator implements Generator using Google's UUID package
type GoogleGenerator struct{}

// New generates a new UUID string
func (g *GoogleGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleGenerator creates a new GoogleGenerator
func NewGoogleGenerator() *GoogleGenerator {
	return &GoogleGenerator{}
}
