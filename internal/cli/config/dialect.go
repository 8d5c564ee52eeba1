package config

import (
	"fmt"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	_ "github.com/leapstack-labs/sqlcols/pkg/dialects/ansi" // register dialect
	"github.com/leapstack-labs/sqlcols/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/sqlcols/pkg/dialects/postgres"  // register dialect
	_ "github.com/leapstack-labs/sqlcols/pkg/dialects/snowflake" // register dialect
)

// rebuilders construct a dialect variant with replaced capabilities.
// Only dialects listed here can have COLUMNS toggled from configuration.
var rebuilders = map[string]func(core.Capabilities) *dialect.Dialect{
	duckdb.Config.Name: func(caps core.Capabilities) *dialect.Dialect {
		return duckdb.New(duckdb.WithCapabilities(caps))
	},
}

// ResolveDialect returns the configured dialect with the Columns override applied.
func (c *Config) ResolveDialect() (*dialect.Dialect, error) {
	d, err := dialect.Lookup(c.Dialect)
	if err != nil {
		return nil, err
	}
	if c.Columns == nil || *c.Columns == d.SupportsColumns() {
		return d, nil
	}

	rebuild, ok := rebuilders[d.Name]
	if !ok {
		return nil, fmt.Errorf("dialect %s cannot toggle COLUMNS support", d.Name)
	}
	caps := d.Capabilities()
	caps.Columns = *c.Columns
	return rebuild(caps), nil
}
