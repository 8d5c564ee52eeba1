package token

// Tokens shared by more than one dialect. They are registered here rather
// than in a dialect package so that the dialect toolbox can refer to them;
// whether a dialect recognizes them is decided by its keyword table.
var (
	// COLUMNS introduces the star-expression construct and its nested
	// predicate form.
	COLUMNS = Register("COLUMNS")

	// Star modifiers.
	EXCLUDE = Register("EXCLUDE")
	REPLACE = Register("REPLACE")
	RENAME  = Register("RENAME")

	QUALIFY = Register("QUALIFY")
	ILIKE   = Register("ILIKE")
	SEMI    = Register("SEMI")
	ANTI    = Register("ANTI")

	// DCOLON is the PostgreSQL-style cast operator "::".
	DCOLON = Register("::")
	// DSLASH is integer division "//".
	DSLASH = Register("//")
)

// IsWord reports whether s looks like a bare SQL word (letter or underscore
// followed by letters, digits or underscores).
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isLetter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= 0x80
		if i == 0 && !isLetter {
			return false
		}
		if !isLetter && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
