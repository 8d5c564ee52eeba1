package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	a := Register("REG_A")
	b := Register("REG_B")

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Register("REG_A"))
	assert.True(t, IsDynamic(a))
	assert.Equal(t, "REG_A", a.String())
}

func TestRegisterFromManyGoroutines(t *testing.T) {
	const n = 64
	got := make([]TokenType, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Register("REG_RACE")
		}()
	}
	wg.Wait()

	for _, id := range got[1:] {
		require.Equal(t, got[0], id)
	}
}

func TestLookupDynamicKeyword(t *testing.T) {
	want := Register("REG_LOOKUP")

	got, ok := LookupDynamicKeyword("REG_LOOKUP")
	require.True(t, ok)
	assert.Equal(t, want, got)

	got, ok = LookupDynamicKeyword("never_registered")
	assert.False(t, ok)
	assert.Equal(t, IDENT, got)

	assert.False(t, IsDynamic(SELECT))
	assert.False(t, IsDynamic(EOF))
}

func TestRegisteredTokensIsSnapshot(t *testing.T) {
	id := Register("REG_SNAPSHOT")

	snap := RegisteredTokens()
	require.Equal(t, "REG_SNAPSHOT", snap[id])

	snap[id] = "changed"
	assert.Equal(t, "REG_SNAPSHOT", RegisteredTokens()[id])

	_, ok := registered.name(TokenType(99999))
	assert.False(t, ok)
}

func TestSharedTokens(t *testing.T) {
	shared := map[string]TokenType{
		"COLUMNS": COLUMNS,
		"EXCLUDE": EXCLUDE,
		"REPLACE": REPLACE,
		"RENAME":  RENAME,
		"QUALIFY": QUALIFY,
		"ILIKE":   ILIKE,
		"::":      DCOLON,
		"//":      DSLASH,
	}

	for name, tok := range shared {
		t.Run(name, func(t *testing.T) {
			assert.True(t, IsDynamic(tok))
			assert.Equal(t, name, tok.String())
			assert.Equal(t, tok, Register(name))
		})
	}
}
