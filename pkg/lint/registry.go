package lint

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]RuleDef{}
)

// Register makes a rule available to every Analyzer. Rule packages call it
// from init; an empty or already registered ID panics.
func Register(rule RuleDef) {
	if rule.ID == "" || rule.Check == nil {
		panic("lint: Register requires an ID and a Check function")
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[rule.ID]; dup {
		panic(fmt.Sprintf("lint: rule %s registered twice", rule.ID))
	}
	registry[rule.ID] = rule
}

// Rules returns the registered rules ordered by ID.
func Rules() []RuleDef {
	registryMu.RLock()
	defer registryMu.RUnlock()

	rules := make([]RuleDef, 0, len(registry))
	for _, r := range registry {
		rules = append(rules, r)
	}
	slices.SortFunc(rules, func(a, b RuleDef) int { return strings.Compare(a.ID, b.ID) })
	return rules
}

// Lookup finds a rule by ID, ignoring case.
func Lookup(id string) (RuleDef, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := registry[ruleKey(id)]
	return r, ok
}
