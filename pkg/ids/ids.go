// Package ids hands out opaque recipient identifiers.
package ids

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces identifiers that are unique for the life of the process.
type Generator interface {
	Next() string
}

// UUID generates random v4 UUIDs.
type UUID struct{}

func (UUID) Next() string { return uuid.NewString() }

// Sequence generates prefix-1, prefix-2, ... and is safe for concurrent use.
// Tests use it to get predictable ids.
type Sequence struct {
	Prefix string
	n      atomic.Uint64
}

func NewSequence(prefix string) *Sequence { return &Sequence{Prefix: prefix} }

func (s *Sequence) Next() string {
	return s.Prefix + "-" + strconv.FormatUint(s.n.Add(1), 10)
}
