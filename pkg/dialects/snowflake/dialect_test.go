package snowflake

import (
	"testing"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/leapstack-labs/sqlcols/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Snowflake
	require.NotNil(t, d)

	assert.Equal(t, "snowflake", d.Name)
	assert.Equal(t, `"`, d.Identifiers.Quote)
	assert.Equal(t, core.NormUppercase, d.Identifiers.Normalization)

	caps := d.Capabilities()
	assert.True(t, caps.StarModifiers)
	assert.True(t, caps.Qualify)
	assert.False(t, caps.Columns, "snowflake has no COLUMNS star expression")
	assert.False(t, caps.GroupByAll)
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("snowflake")
	require.True(t, ok, "snowflake dialect should be registered")
	assert.Same(t, Snowflake, d)
}

func TestOperators(t *testing.T) {
	assert.Equal(t, core.PrecedenceComparison, Snowflake.Precedence(TokenRlike))
	assert.Equal(t, core.PrecedenceComparison, Snowflake.Precedence(token.ILIKE))
	assert.NotNil(t, Snowflake.StarModifierHandler(token.EXCLUDE))

	_, ok := Snowflake.LookupKeyword("columns")
	assert.False(t, ok)
}

func TestIdentifierQuoting(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"amount", "amount"},
		{"sample", `"sample"`},
		{"TABLE", `"TABLE"`},
		{"order", `"order"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Snowflake.QuoteIdentifierIfNeeded(tt.name))
		})
	}
}
