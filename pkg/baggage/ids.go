package baggage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator hands out fresh baggage and item ids.
type IDGenerator interface {
	BaggageID() string
	ItemID() string
}

// NewIDGenerator returns the default generator. Baggage ids are millisecond
// timestamps kept strictly increasing within the process; item ids add a
// random suffix because many items can be created in the same millisecond.
func NewIDGenerator() IDGenerator {
	return &clockIDs{now: time.Now}
}

type clockIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func (g *clockIDs) BaggageID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

func (g *clockIDs) ItemID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", g.now().UnixMilli(), suffix)
}

// SequenceIDs is a deterministic IDGenerator, handy in tests and fixtures.
type SequenceIDs struct {
	Prefix string

	mu sync.Mutex
	n  int
}

func (s *SequenceIDs) next(kind string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s%s-%d", s.Prefix, kind, s.n)
}

// BaggageID implements IDGenerator.
func (s *SequenceIDs) BaggageID() string { return s.next("bag") }

// ItemID implements IDGenerator.
func (s *SequenceIDs) ItemID() string { return s.next("item") }
