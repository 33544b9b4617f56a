package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const stateTokenRandomBytes = 32

// StateGenerator produces the opaque single-use values round-tripped through
// OAuth provider redirects.
type StateGenerator interface {
	Generate() (string, error)
}

type stateGenerator struct{}

func NewStateGenerator() StateGenerator {
	return &stateGenerator{}
}

func (g *stateGenerator) Generate() (string, error) {
	randomBytes := make([]byte, stateTokenRandomBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(randomBytes), nil
}
