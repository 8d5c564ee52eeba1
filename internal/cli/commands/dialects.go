package commands

import (
	"github.com/leapstack-labs/sqlcols/internal/cli/output"
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// capability is one optional dialect feature shown by the dialects command.
type capability struct {
	key string
	get func(core.Capabilities) bool
}

var capabilities = []capability{
	{"columns", func(c core.Capabilities) bool { return c.Columns }},
	{"star modifiers", func(c core.Capabilities) bool { return c.StarModifiers }},
	{"qualify", func(c core.Capabilities) bool { return c.Qualify }},
	{"ilike", func(c core.Capabilities) bool { return c.Ilike }},
	{"cast operator", func(c core.Capabilities) bool { return c.CastOperator }},
	{"semi anti joins", func(c core.Capabilities) bool { return c.SemiAntiJoins }},
	{"group by all", func(c core.Capabilities) bool { return c.GroupByAll }},
	{"order by all", func(c core.Capabilities) bool { return c.OrderByAll }},
	{"regex match", func(c core.Capabilities) bool { return c.RegexMatch }},
	{"integer divide", func(c core.Capabilities) bool { return c.IntegerDivide }},
	{"nested literals", func(c core.Capabilities) bool { return c.NestedLiterals }},
}

// DialectInfo describes a registered dialect.
type DialectInfo struct {
	Name         string          `json:"name" yaml:"name"`
	Capabilities map[string]bool `json:"capabilities" yaml:"capabilities"`
	Identifiers  string          `json:"identifiers" yaml:"identifiers"` // unquoted name normalization
	Placeholder  string          `json:"placeholder" yaml:"placeholder"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List dialects and their capabilities",
		Long: `List every registered SQL dialect with the optional syntax it accepts.

The configured dialect reflects any --columns override.`,
		Args: cobra.NoArgs,
		RunE: runDialects,
	}
}

func runDialects(cmd *cobra.Command, _ []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	var infos []DialectInfo
	for _, name := range dialect.List() {
		d, ok := dialect.Get(name)
		if !ok {
			continue
		}
		if d.Name == cmdCtx.Dialect.Name {
			d = cmdCtx.Dialect
		}
		caps := d.Capabilities()
		info := DialectInfo{
			Name:         d.Name,
			Capabilities: make(map[string]bool, len(capabilities)),
			Identifiers:  d.Identifiers.Normalization.String(),
			Placeholder:  d.Placeholder.String(),
		}
		for _, c := range capabilities {
			info.Capabilities[c.key] = c.get(caps)
		}
		infos = append(infos, info)
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(infos)
	case output.ModeYAML:
		return r.YAML(infos)
	}

	titleCaser := cases.Title(language.English)
	header := []string{"Dialect"}
	for _, c := range capabilities {
		header = append(header, titleCaser.String(c.key))
	}
	header = append(header, "Identifiers", "Placeholder")

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name
		if name == cmdCtx.Dialect.Name {
			name += " *"
		}
		row := []string{name}
		for _, c := range capabilities {
			row = append(row, yesNo(info.Capabilities[c.key]))
		}
		row = append(row, info.Identifiers, info.Placeholder)
		rows = append(rows, row)
	}

	r.Header(2, "Dialects")
	r.Table(header, rows)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
