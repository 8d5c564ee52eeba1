package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlcols/internal/cli/output"
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/parser"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned when any input fails to parse.
var ErrCheckFailed = errors.New("check failed")

// CheckResult is the outcome of checking one input.
type CheckResult struct {
	File     string   `json:"file" yaml:"file"`
	Valid    bool     `json:"valid" yaml:"valid"`
	Kind     string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int      `json:"column,omitempty" yaml:"column,omitempty"`
	Found    string   `json:"found,omitempty" yaml:"found,omitempty"`
	Expected []string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Message  string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var exprOnly bool
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Report syntax errors",
		Long: `Parse each input and report syntax errors with their kind,
position and the tokens that were expected.

Exits non-zero when any input fails. Reads from stdin when no file is given.`,
		Example: `  # Check several files
  sqlcols check models/*.sql

  # Check with COLUMNS disabled
  sqlcols check --columns=false query.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, exprOnly)
		},
	}

	cmd.Flags().BoolVar(&exprOnly, "expr", false, "Treat input as a single expression")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, exprOnly bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	results := make([]CheckResult, 0, len(paths))
	sources := make(map[string]string, len(paths))
	for _, path := range paths {
		in, err := readInput(cmd, []string{path})
		if err != nil {
			return err
		}
		sources[in.Name] = in.SQL

		if exprOnly {
			_, err = parser.ParseExpr(in.SQL, cmdCtx.Dialect)
		} else {
			_, err = parser.ParseWithDialect(in.SQL, cmdCtx.Dialect)
		}
		results = append(results, newCheckResult(in.Name, err))
		cmdCtx.Logger.Debug("checked", "file", in.Name, "valid", err == nil)
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		err = r.JSON(results)
	case output.ModeYAML:
		err = r.YAML(results)
	default:
		renderCheckResults(r, results, sources)
	}
	if err != nil {
		return err
	}

	for _, res := range results {
		if !res.Valid {
			return ErrCheckFailed
		}
	}
	return nil
}

func newCheckResult(name string, err error) CheckResult {
	res := CheckResult{File: name, Valid: err == nil}
	if err == nil {
		return res
	}

	var pe *core.ParseError
	if !errors.As(err, &pe) {
		res.Kind = core.KindSyntax.String()
		res.Message = err.Error()
		return res
	}
	res.Kind = pe.Kind.String()
	res.Line = pe.Pos.Line
	res.Column = pe.Pos.Column
	res.Found = pe.Found
	res.Expected = pe.Expected
	// keep the construct context ("COLUMNS: EXCLUDE: ") added by wrapping
	res.Message = strings.TrimSuffix(err.Error(), pe.Error()) + pe.Message
	return res
}

func renderCheckResults(r *output.Renderer, results []CheckResult, sources map[string]string) {
	styles := r.Styles()
	text := r.EffectiveMode() == output.ModeText

	failed := 0
	for _, res := range results {
		if res.Valid {
			r.Success(res.File + ": ok")
			continue
		}
		failed++

		loc := fmt.Sprintf("%s:%d:%d", res.File, res.Line, res.Column)
		if text {
			r.Printf("%s %s: %s %s\n", styles.StatusFailed.String(), styles.Bold.Render(loc),
				styles.Error.Render(res.Kind), res.Message)
		} else {
			r.Printf("- **%s**: %s: %s\n", loc, res.Kind, res.Message)
		}
		if len(res.Expected) > 0 {
			r.Printf("    expected: %s\n", strings.Join(res.Expected, ", "))
		}

		if snippet := sourceSnippet(sources[res.File], res.Line, res.Column); snippet != "" {
			if text {
				r.Println(styles.Muted.Render(snippet))
			} else {
				r.Println("```sql\n" + snippet + "\n```")
			}
		}
	}

	if len(results) > 1 {
		r.Printf("\n%d checked, %d failed\n", len(results), failed)
	}
}

// sourceSnippet returns the offending line with a caret under column.
func sourceSnippet(src string, line, column int) string {
	if line < 1 || column < 1 {
		return ""
	}
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return ""
	}
	text := strings.TrimRight(lines[line-1], "\r")
	return text + "\n" + strings.Repeat(" ", column-1) + "^"
}
