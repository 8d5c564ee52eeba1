package commands

import (
	"fmt"

	"github.com/leapstack-labs/sqlcols/internal/cli/output"
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/parser"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var exprOnly bool
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the syntax tree of a query",
		Long: `Parse SQL and dump its syntax tree.

The tree is written as JSON with --output json and as YAML otherwise.
Reads from stdin when no file is given.`,
		Example: `  # Inspect a COLUMNS expression
  echo "COLUMNS(['id', 'name'])" | sqlcols parse --expr

  # JSON for tooling
  sqlcols parse query.sql -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, exprOnly)
		},
	}

	cmd.Flags().BoolVar(&exprOnly, "expr", false, "Treat input as a single expression")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, exprOnly bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var tree core.Node
	if exprOnly {
		tree, err = parser.ParseExpr(in.SQL, cmdCtx.Dialect)
	} else {
		tree, err = parser.ParseWithDialect(in.SQL, cmdCtx.Dialect)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", in.Name, err)
	}

	doc := describeNode(tree)
	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(doc)
	}
	return r.YAML(doc)
}
