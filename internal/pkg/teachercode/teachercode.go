// Package teachercode produces the short, human-typeable personal codes
// assigned to teachers at registration.
package teachercode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Alphabet drops 0/O and 1/I so a code read over the phone or typed from a
// printout cannot be mistyped into a different valid code.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	Length      = 6
	maxAttempts = 100
)

// ErrCodeExhausted means maxAttempts draws all collided. The keyspace is
// effectively full (or the index is adversarial); fail loudly instead of
// looping forever.
var ErrCodeExhausted = errors.New("personal code space exhausted")

// Index answers whether a candidate code is already assigned. It must read
// the live store, never a snapshot.
type Index interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

type Generator struct {
	index Index
}

func NewGenerator(index Index) *Generator {
	return &Generator{
		index: index,
	}
}

// Generate rejection-samples the keyspace until it finds an unassigned code.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := draw()
		if err != nil {
			return "", fmt.Errorf("draw -> %w", err)
		}

		taken, err := g.index.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("g.index.CodeExists -> %w", err)
		}
		if !taken {
			return code, nil
		}
	}

	return "", ErrCodeExhausted
}

func draw() (string, error) {
	max := big.NewInt(int64(len(Alphabet)))

	code := make([]byte, Length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}

		code[i] = Alphabet[n.Int64()]
	}

	return string(code), nil
}
