package teachercode

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndex struct {
	taken func(code string) bool
	err   error
	calls int
}

func (f *fakeIndex) CodeExists(_ context.Context, code string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}

	return f.taken(code), nil
}

func TestGenerate_UsesAlphabetAndLength(t *testing.T) {
	gen := NewGenerator(&fakeIndex{taken: func(string) bool { return false }})

	for i := 0; i < 50; i++ {
		code, err := gen.Generate(context.Background())
		require.NoError(t, err)
		require.Len(t, code, Length)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected rune %q in %q", r, code)
		}

		// Ambiguous glyphs never appear.
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
	}
}

func TestGenerate_SkipsTakenCodes(t *testing.T) {
	index := &fakeIndex{}
	collisions := 3
	index.taken = func(string) bool {
		if index.calls <= collisions {
			return true
		}

		return false
	}

	gen := NewGenerator(index)

	code, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, Length)
	assert.Equal(t, collisions+1, index.calls)
}

func TestGenerate_Exhausted(t *testing.T) {
	gen := NewGenerator(&fakeIndex{taken: func(string) bool { return true }})

	_, err := gen.Generate(context.Background())
	assert.ErrorIs(t, err, ErrCodeExhausted)
}

func TestGenerate_IndexFailure(t *testing.T) {
	boom := errors.New("store offline")
	gen := NewGenerator(&fakeIndex{err: boom})

	_, err := gen.Generate(context.Background())
	assert.ErrorIs(t, err, boom)
}
