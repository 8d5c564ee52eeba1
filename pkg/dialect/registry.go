package dialect

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// ErrUnknownDialect is wrapped by Lookup for names nothing registered.
var ErrUnknownDialect = errors.New("unknown dialect")

var (
	mu       sync.RWMutex
	dialects = map[string]*Dialect{}

	// clauseWords holds every clause keyword of any built dialect, so the
	// parser can say "QUALIFY is not supported" instead of a bare syntax error.
	clauseWords = map[string]struct{}{}
)

// Register makes d available by its case-insensitive name. Dialect
// packages call it from init; a later registration replaces an earlier one.
func Register(d *Dialect) {
	mu.Lock()
	defer mu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
}

// Get returns the dialect registered under name.
func Get(name string) (*Dialect, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// Lookup is Get with an error wrapping ErrUnknownDialect that lists the
// registered names.
func Lookup(name string) (*Dialect, error) {
	d, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownDialect, name, strings.Join(List(), ", "))
	}
	return d, nil
}

// List returns the registered dialect names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(dialects))
}

func recordClause(t token.TokenType) {
	mu.Lock()
	defer mu.Unlock()
	clauseWords[t.String()] = struct{}{}
}

// IsKnownClause reports whether any dialect treats word as a clause keyword.
func IsKnownClause(word string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := clauseWords[strings.ToUpper(word)]
	return ok
}
