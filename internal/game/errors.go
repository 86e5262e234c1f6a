package game

import "errors"

var (
	// ErrTableSize is returned for tables outside the supported range.
	ErrTableSize = errors.New("unsupported table size")
	// ErrInvalidTeam is returned when a leader proposes a team of the wrong
	// size, with duplicates, or with players not at the table.
	ErrInvalidTeam = errors.New("invalid team")
	// ErrSeating is returned when bots and seats disagree.
	ErrSeating = errors.New("invalid seating")
)
