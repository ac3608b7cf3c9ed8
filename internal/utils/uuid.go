package utils

import "github.com/google/uuid"

// UUIDGenerator produces element identifiers. UUIDv7 keeps ids roughly
// time-ordered, which makes the creation-time ordering of canvas listings
// stable for elements created within the same millisecond.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
