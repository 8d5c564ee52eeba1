package commands

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/sqlcols/pkg/format"
	"github.com/leapstack-labs/sqlcols/pkg/parser"
	"github.com/spf13/cobra"
)

// FormatOptions holds options for the format command.
type FormatOptions struct {
	Expr  bool // input is a single expression
	Write bool // rewrite the file in place
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	opts := &FormatOptions{}
	cmd := &cobra.Command{
		Use:     "format [file]",
		Aliases: []string{"fmt"},
		Short:   "Print SQL in canonical form",
		Long: `Parse a SELECT statement and print it in canonical form.

COLUMNS expressions are printed with parenthesized EXCLUDE lists, and
printing the result again yields the same syntax tree.
Reads from stdin when no file is given.`,
		Example: `  # Format a file
  sqlcols format query.sql

  # Format an expression from stdin
  echo "columns(* exclude id)" | sqlcols fmt --expr`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Expr, "expr", false, "Treat input as a single expression")
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Write result to the source file instead of stdout")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, opts *FormatOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if opts.Write && in.Name == stdinName {
		return fmt.Errorf("--write requires a file argument")
	}

	formatted, err := formatSQL(in.SQL, cmdCtx, opts.Expr)
	if err != nil {
		return fmt.Errorf("%s: %w", in.Name, err)
	}

	if opts.Write {
		if formatted == in.SQL {
			cmdCtx.Logger.Debug("already formatted", "file", in.Name)
			return nil
		}
		info, err := os.Stat(in.Name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(in.Name, []byte(formatted), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", in.Name, err)
		}
		cmdCtx.Logger.Info("formatted", "file", in.Name)
		return nil
	}

	_, err = fmt.Fprint(cmdCtx.Renderer.Writer(), formatted)
	return err
}

func formatSQL(sql string, cmdCtx *CommandContext, expr bool) (string, error) {
	if expr {
		e, err := parser.ParseExpr(sql, cmdCtx.Dialect)
		if err != nil {
			return "", err
		}
		return format.Expr(e, cmdCtx.Dialect) + "\n", nil
	}

	stmt, err := parser.ParseWithDialect(sql, cmdCtx.Dialect)
	if err != nil {
		return "", err
	}
	return format.Format(stmt, cmdCtx.Dialect), nil
}
