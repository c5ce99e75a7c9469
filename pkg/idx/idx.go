// Package idx generates the sortable identifiers used for organizations,
// invites and memberships.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a canonical ULID string.
type ID string

// Zero is the empty ID. It is never produced by New.
const Zero ID = ""

// ErrInvalid reports a malformed identifier.
var ErrInvalid = errors.New("idx: invalid identifier")

var (
	sourceOnce sync.Once
	source     *monotonicSource
)

// monotonicSource serialises access to the ULID entropy so IDs minted within
// the same millisecond still sort in creation order.
type monotonicSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (s *monotonicSource) at(t time.Time) ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t.UTC()), s.entropy).String())
}

func src() *monotonicSource {
	sourceOnce.Do(func() {
		source = &monotonicSource{entropy: ulid.Monotonic(rand.Reader, 0)}
	})
	return source
}

// New returns a new ID stamped with the current time.
func New() ID {
	return src().at(time.Now())
}

// NewAt returns an ID stamped with t. Useful for fixtures that need a
// deterministic ordering.
func NewAt(t time.Time) ID {
	return src().at(t)
}

// Parse validates s and returns it as an ID. Surrounding whitespace is
// ignored; lowercase input is normalised to the canonical uppercase form.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	u, err := ulid.ParseStrict(s)
	if err != nil {
		return Zero, ErrInvalid
	}
	return ID(u.String()), nil
}

// MustParse is Parse for hard-coded IDs in tests.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

func (id ID) String() string { return string(id) }

// Time returns the timestamp embedded in id, or the zero time when id does
// not parse.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time()).UTC()
}
