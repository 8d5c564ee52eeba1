// Package core defines the shared language of the sqlcols system.
//
// This package contains:
//   - The SQL AST (statements, expressions, the COLUMNS construct)
//   - Dialect configuration data (DialectConfig, capability flags)
//   - Parsing vocabulary shared by the parser and dialects (ClauseSlot, precedence)
//   - The structured ParseError returned by every parsing entry point
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
