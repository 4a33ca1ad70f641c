package utils

import "github.com/google/uuid"

// UUIDGenerator produces run identifiers. Time-ordered v7 values are used
// so that log lines of consecutive runs sort naturally.
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
