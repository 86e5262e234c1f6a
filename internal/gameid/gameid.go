// Package gameid names games. Seeded IDs let a competition log be matched
// against a replay of the same seed.
package gameid

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Generate returns a fresh time-ordered game ID.
func Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FromSeed returns a random-looking ID that is fully determined by seed.
func FromSeed(seed int64) string {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	binary.LittleEndian.PutUint64(key[8:16], ^uint64(seed))
	return uuid.Must(uuid.NewRandomFromReader(rand.NewChaCha8(key))).String()
}

// Short returns the first block of an ID for compact log lines.
func Short(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
