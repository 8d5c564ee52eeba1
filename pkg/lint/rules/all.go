// Package rules registers every built-in lint rule. Import it for side effects.
package rules

import (
	_ "github.com/leapstack-labs/sqlcols/pkg/lint/rules/columns" // CL rules
)
