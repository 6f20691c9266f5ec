package domain

import (
	"strconv"
	"sync"
)

// Sequence issues gapless string identifiers with a fixed prefix.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	last   int64
}

// NewSequence returns a Sequence that continues numbering after start, so the
// first call to Next returns prefix + (start+1).
func NewSequence(prefix string, start int64) *Sequence {
	return &Sequence{prefix: prefix, last: start}
}

// Next returns the next identifier in the sequence.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++

	return s.prefix + strconv.FormatInt(s.last, 10)
}
