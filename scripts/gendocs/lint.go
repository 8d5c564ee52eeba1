package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/lint"
	_ "github.com/leapstack-labs/sqlcols/pkg/lint/rules"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"columns": "Rules about COLUMNS expressions and EXCLUDE, REPLACE and RENAME star modifiers.",
}

// generateLintDocs generates all lint documentation files.
func generateLintDocs(outDir string) error {
	log.Printf("Generating lint docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.Rules()

	if err := lintIndexPage(rules).Save(outDir, "index.md"); err != nil {
		return err
	}
	return rulesPage(rules).Save(outDir, "rules.md")
}

func lintIndexPage(rules []lint.RuleDef) *MarkdownWriter {
	w := NewMarkdownWriter()

	w.Frontmatter("Linting", "COLUMNS lint rules for sqlcols")
	w.GeneratedMarker()

	w.Header(1, "Linting")
	w.Paragraph(fmt.Sprintf("`sqlcols lint` runs **%d rules** over every COLUMNS expression and star modifier list in a statement.", len(rules)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `sqlcols.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled: [CL04]       # disable rules
  severity:
    CL02: warning        # override severity`)

	w.Header(2, "Rules")
	var rows [][]string
	for _, r := range rules {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/linting/rules#%s)", r.ID, r.ID),
			InlineCode(r.Name),
			r.Severity.String(),
		})
	}
	w.Table([]string{"ID", "Name", "Severity"}, rows)

	return w
}

// rulesPage documents every rule, grouped and sorted by ID.
func rulesPage(rules []lint.RuleDef) *MarkdownWriter {
	w := NewMarkdownWriter()

	w.Frontmatter("Lint Rules", "Rule reference for sqlcols lint")
	w.GeneratedMarker()

	w.Header(1, "Lint Rules")

	grouped := make(map[string][]lint.RuleDef)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], r)
	}

	title := cases.Title(language.English)
	for _, group := range slices.Sorted(maps.Keys(grouped)) {
		w.Line(fmt.Sprintf("## %s {#%s}", title.String(group), group))
		w.Newline()

		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		for _, rule := range grouped[group] {
			writeRuleDoc(w, rule)
		}
	}

	return w
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule lint.RuleDef) {
	// ### CL01 - columns.duplicate-name {#CL01}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.ID, rule.Name, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.Severity.String())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rule.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rule.Rationale))
	}

	if rule.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("sql", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("sql", rule.GoodExample)
	}

	w.Line("---")
	w.Newline()
}
