package testkit

import (
	"fmt"
	"sync"
	"time"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/pkg/observability"
)

// Env is a deterministic set of collaborators for identifier tests.
type Env struct {
	Clock   *ManualClock
	Nibbles *ManualNibbleSource
	UUIDs   *ManualUUIDGenerator
	Logger  *observability.TestLogger
}

func New() *Env {
	return NewWithTime(time.Unix(0, 0).UTC())
}

func NewWithTime(now time.Time) *Env {
	return &Env{
		Clock:   NewManualClock(now),
		Nibbles: NewManualNibbleSource(),
		UUIDs:   NewManualUUIDGenerator(),
		Logger:  observability.NewTestLogger(),
	}
}

// Identifier builds an Identifier wired to the Env's collaborators. Later
// options override the Env's.
func (e *Env) Identifier(opts ...idtheory.Option) idtheory.Identifier {
	combined := make([]idtheory.Option, 0, len(opts)+4)
	combined = append(combined,
		idtheory.WithClock(e.Clock),
		idtheory.WithNibbleSource(e.Nibbles),
		idtheory.WithUUIDGenerator(e.UUIDs),
		idtheory.WithLogger(e.Logger),
	)
	combined = append(combined, opts...)
	return idtheory.New(combined...)
}

// ManualClock is a deterministic, mutable clock for tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ idtheory.Clock = (*ManualClock)(nil)

func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	c.now = c.now.Add(d)
	out := c.now
	c.mu.Unlock()
	return out
}

// ManualNibbleSource returns queued nibbles first, then counts 0,1,...,15,0,...
type ManualNibbleSource struct {
	mu    sync.Mutex
	next  byte
	queue []byte
	drawn int
}

var _ idtheory.NibbleSource = (*ManualNibbleSource)(nil)

func NewManualNibbleSource() *ManualNibbleSource {
	return &ManualNibbleSource{}
}

// Queue appends values to return before falling back to counting. Values are
// returned as given; callers rely on the consumer to mask them.
func (s *ManualNibbleSource) Queue(nibbles ...byte) {
	s.mu.Lock()
	s.queue = append(s.queue, nibbles...)
	s.mu.Unlock()
}

// QueueHex queues one nibble per hex digit of h.
func (s *ManualNibbleSource) QueueHex(h string) {
	nibbles := make([]byte, 0, len(h))
	for _, c := range h {
		switch {
		case c >= '0' && c <= '9':
			nibbles = append(nibbles, byte(c-'0'))
		case c >= 'a' && c <= 'f':
			nibbles = append(nibbles, byte(c-'a'+10))
		case c >= 'A' && c <= 'F':
			nibbles = append(nibbles, byte(c-'A'+10))
		default:
			panic(fmt.Sprintf("testkit: %q is not a hex digit", c))
		}
	}
	s.Queue(nibbles...)
}

func (s *ManualNibbleSource) Reset() {
	s.mu.Lock()
	s.queue = nil
	s.next = 0
	s.drawn = 0
	s.mu.Unlock()
}

// Drawn reports how many nibbles have been taken.
func (s *ManualNibbleSource) Drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawn
}

func (s *ManualNibbleSource) Nibble() byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drawn++
	if len(s.queue) > 0 {
		out := s.queue[0]
		s.queue = s.queue[1:]
		return out
	}
	out := s.next
	s.next = (s.next + 1) & 0x0f
	return out
}

// ManualUUIDGenerator is a deterministic, predictable UUID generator for tests.
//
// It returns queued strings first, then sequential UUIDs whose last group is
// a counter. A queued error is returned by the next call.
type ManualUUIDGenerator struct {
	mu       sync.Mutex
	next     int64
	queue    []string
	errs     []error
	versions []idtheory.UUIDVersion
}

var _ idtheory.UUIDGenerator = (*ManualUUIDGenerator)(nil)

func NewManualUUIDGenerator() *ManualUUIDGenerator {
	return &ManualUUIDGenerator{next: 1}
}

func (g *ManualUUIDGenerator) Queue(uuids ...string) {
	g.mu.Lock()
	g.queue = append(g.queue, uuids...)
	g.mu.Unlock()
}

func (g *ManualUUIDGenerator) Fail(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

func (g *ManualUUIDGenerator) Reset() {
	g.mu.Lock()
	g.queue = nil
	g.errs = nil
	g.versions = nil
	g.next = 1
	g.mu.Unlock()
}

// Versions returns the versions requested so far.
func (g *ManualUUIDGenerator) Versions() []idtheory.UUIDVersion {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]idtheory.UUIDVersion(nil), g.versions...)
}

func (g *ManualUUIDGenerator) NewUUID(version idtheory.UUIDVersion) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.versions = append(g.versions, version)
	if len(g.errs) > 0 {
		err := g.errs[0]
		g.errs = g.errs[1:]
		return "", err
	}
	if len(g.queue) > 0 {
		out := g.queue[0]
		g.queue = g.queue[1:]
		return out, nil
	}

	out := fmt.Sprintf("00000000-0000-%d000-8000-%012x", int(version.Normalize()), g.next)
	g.next++
	return out, nil
}
