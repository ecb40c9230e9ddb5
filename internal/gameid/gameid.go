// Package gameid issues the identifiers attached to games and rounds in logs
// and hand histories.
package gameid

import (
	"encoding/base32"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lower case
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator creates time-ordered IDs from UUIDv7 values.
type Generator struct {
	random io.Reader // nil uses uuid's default source
}

// NewGenerator creates a generator. Passing a reader makes the random part of
// each ID come from it, which tests use to get repeatable suffixes.
func NewGenerator(random io.Reader) *Generator {
	return &Generator{random: random}
}

// Generate creates a new ID.
func (g *Generator) Generate() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.random != nil {
		id, err = uuid.NewV7FromReader(g.random)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		return "", fmt.Errorf("generate uuidv7: %w", err)
	}
	return Encode(id), nil
}

// Generate creates a new ID from the default source. It panics only if the
// system random source fails.
func Generate() string {
	id, err := NewGenerator(nil).Generate()
	if err != nil {
		panic(err)
	}
	return id
}

// Encode renders a UUID as 26 base32 characters. Lexical order of the output
// follows byte order, so v7 IDs sort by creation time.
func Encode(id uuid.UUID) string {
	return encoding.EncodeToString(id[:])
}

// Validate checks that id is an encoded UUIDv7.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return fmt.Errorf("decode game ID: %w", err)
	}
	u, err := uuid.FromBytes(raw)
	if err != nil {
		return fmt.Errorf("decode game ID: %w", err)
	}
	if u.Version() != 7 {
		return fmt.Errorf("game ID is UUID version %d, want 7", u.Version())
	}
	return nil
}
