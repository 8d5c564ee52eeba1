package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/sqlcols/internal/cli/config"
	"github.com/leapstack-labs/sqlcols/internal/cli/output"
	"github.com/leapstack-labs/sqlcols/pkg/lint"
	_ "github.com/leapstack-labs/sqlcols/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/sqlcols/pkg/parser"
	"github.com/spf13/cobra"
)

// ErrLintIssues is returned when lint reports diagnostics.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
}

// FileDiagnostics groups the diagnostics of one input.
type FileDiagnostics struct {
	File        string            `json:"file" yaml:"file"`
	Diagnostics []lint.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [file...]",
		Short: "Run lint rules on COLUMNS expressions",
		Long: `Analyze SQL for suspicious COLUMNS and star modifier usage:
repeated names, conflicting EXCLUDE/REPLACE/RENAME and predicates that
ignore their bound name. Rules can be configured in sqlcols.yaml.

Exits non-zero when any diagnostic at or above --severity remains.`,
		Example: `  # Lint a file
  sqlcols lint query.sql

  # Disable specific rules
  sqlcols lint --disable CL02 query.sql

  # Only report errors
  sqlcols lint --severity error query.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *LintOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	minimum, err := lint.ParseSeverity(opts.Severity)
	if err != nil {
		return err
	}
	lintCfg, err := buildLintConfig(cmdCtx.Cfg, opts)
	if err != nil {
		return err
	}
	analyzer := lint.NewAnalyzer(lintCfg)

	paths := args
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	results := make([]FileDiagnostics, 0, len(paths))
	issues := 0
	for _, path := range paths {
		in, err := readInput(cmd, []string{path})
		if err != nil {
			return err
		}
		stmt, err := parser.ParseWithDialect(in.SQL, cmdCtx.Dialect)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}

		diags := lint.FilterBySeverity(analyzer.Analyze(stmt, cmdCtx.Dialect), minimum)
		if diags == nil {
			diags = []lint.Diagnostic{}
		}
		issues += len(diags)
		results = append(results, FileDiagnostics{File: in.Name, Diagnostics: diags})
		cmdCtx.Logger.Debug("linted", "file", in.Name, "diagnostics", len(diags))
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		err = r.JSON(results)
	case output.ModeYAML:
		err = r.YAML(results)
	default:
		renderLintResults(r, results)
	}
	if err != nil {
		return err
	}

	if issues > 0 {
		return ErrLintIssues
	}
	return nil
}

// buildLintConfig applies project config first, then CLI flags.
func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	lintCfg, err := lint.ConfigFrom(cfg.Lint.Disabled, cfg.Lint.Severity)
	if err != nil {
		return nil, err
	}
	return lintCfg.Disable(opts.Disable...), nil
}

func renderLintResults(r *output.Renderer, results []FileDiagnostics) {
	styles := r.Styles()
	text := r.EffectiveMode() == output.ModeText

	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			r.Success(res.File + ": no issues")
			continue
		}
		r.Header(2, res.File)
		for _, d := range res.Diagnostics {
			if !text {
				r.Printf("- **%s** (%s): %s\n", d.RuleID, d.Severity, d.Message)
				continue
			}
			sev := styles.Muted.Render(d.Severity.String())
			switch d.Severity {
			case lint.SeverityError:
				sev = styles.Error.Render(d.Severity.String())
			case lint.SeverityWarning:
				sev = styles.Warning.Render(d.Severity.String())
			}
			r.Printf("  %s %s %s\n", styles.Code.Render(d.RuleID), sev, d.Message)
		}
	}
}
