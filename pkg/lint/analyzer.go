package lint

import "github.com/leapstack-labs/sqlcols/pkg/core"

// Analyzer runs lint rules against parsed SQL.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs every enabled registered rule against stmt.
// A nil dialect compares names exactly.
func (a *Analyzer) Analyze(stmt *core.SelectStmt, d DialectInfo) []Diagnostic {
	if stmt == nil {
		return nil
	}
	if d == nil {
		d = exactNames{}
	}

	var diagnostics []Diagnostic
	for _, rule := range Rules() {
		if !a.config.Enabled(rule.ID) {
			continue
		}

		diags := rule.Check(stmt, d)
		for i := range diags {
			diags[i].RuleID = rule.ID
			diags[i].Severity = a.config.SeverityOf(rule)
		}
		diagnostics = append(diagnostics, diags...)
	}

	return diagnostics
}

// FilterBySeverity keeps diagnostics at least as severe as minimum.
func FilterBySeverity(diags []Diagnostic, minimum Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Severity <= minimum {
			out = append(out, d)
		}
	}
	return out
}

type exactNames struct{}

func (exactNames) NormalizeName(name string) string { return name }
