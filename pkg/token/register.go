package token

import (
	"maps"
	"sync"
)

// dynamicTable hands out token IDs above maxBuiltin. IDs are stable for
// the life of the process.
type dynamicTable struct {
	mu     sync.RWMutex
	last   TokenType
	byID   map[TokenType]string
	byName map[string]TokenType
}

var registered = &dynamicTable{
	last:   maxBuiltin,
	byID:   map[TokenType]string{},
	byName: map[string]TokenType{},
}

// Register returns the token type for name, allocating one on first use.
// Dialects call it for keywords and symbols outside the core, such as
// QUALIFY or "::".
func Register(name string) TokenType {
	return registered.intern(name)
}

func (d *dynamicTable) intern(name string) TokenType {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.byName[name]; ok {
		return t
	}
	d.last++
	d.byID[d.last] = name
	d.byName[name] = d.last
	return d.last
}

func (d *dynamicTable) name(t TokenType) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.byID[t]
	return s, ok
}

// LookupDynamicKeyword finds a registered token by its exact name. It
// returns IDENT and false for names nobody registered.
func LookupDynamicKeyword(name string) (TokenType, bool) {
	registered.mu.RLock()
	defer registered.mu.RUnlock()
	if t, ok := registered.byName[name]; ok {
		return t, true
	}
	return IDENT, false
}

// IsDynamic reports whether t was allocated by Register.
func IsDynamic(t TokenType) bool { return t > maxBuiltin }

// RegisteredTokens snapshots the registered tokens.
func RegisteredTokens() map[TokenType]string {
	registered.mu.RLock()
	defer registered.mu.RUnlock()
	return maps.Clone(registered.byID)
}
