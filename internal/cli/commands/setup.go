package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/sqlcols/internal/cli/config"
	"github.com/leapstack-labs/sqlcols/internal/cli/output"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Dialect  *dialect.Dialect
	Renderer *output.Renderer
}

// NewCommandContext resolves the configured dialect and builds a renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	d, err := cfg.ResolveDialect()
	if err != nil {
		return nil, err
	}
	logger.Debug("dialect resolved", "dialect", d.Name, "columns", d.SupportsColumns())

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Dialect:  d,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}, nil
}

// sqlInput is one unit of SQL read from a file or stdin.
type sqlInput struct {
	Name string // file path, or "<stdin>"
	SQL  string
}

const stdinName = "<stdin>"

// readInput reads SQL from the file named in args, or stdin when args is
// empty or "-".
func readInput(cmd *cobra.Command, args []string) (*sqlInput, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return &sqlInput{Name: stdinName, SQL: string(data)}, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return &sqlInput{Name: args[0], SQL: string(data)}, nil
}
