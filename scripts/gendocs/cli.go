package main

import (
	"cmp"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/leapstack-labs/sqlcols/internal/cli"
	"github.com/leapstack-labs/sqlcols/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCLIDocs writes index.md plus one page per top-level command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}

	root := cli.NewRootCmd()
	if err := cliIndexPage(root).Save(outDir, "index.md"); err != nil {
		return err
	}
	for _, cmd := range visibleCommands(root) {
		if err := commandPage(cmd).Save(outDir, cmd.Name()+".md"); err != nil {
			return err
		}
	}
	return nil
}

func cliIndexPage(root *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for sqlcols")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(cleanDescription(root.Long))

	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/sqlcols/cmd/sqlcols@latest")

	w.Header(2, "Usage")
	w.CodeBlock("bash", "sqlcols <command> [flags] [file...]")
	w.Paragraph("Without a file argument, or with `-`, commands read standard input.")

	w.Header(2, "Commands")
	var cmds [][]string
	for _, cmd := range visibleCommands(root) {
		cmds = append(cmds, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, cmds)

	w.Header(2, "Global Flags")
	flagTable(w, root.PersistentFlags())

	w.Header(2, "Environment")
	w.Paragraph(fmt.Sprintf("Each configuration key has a %s variable. "+
		"Flags override the environment, and the environment overrides the config file.",
		InlineCode(config.EnvPrefix+"*")))
	var env [][]string
	for _, f := range configFields() {
		if f.Env != "" {
			env = append(env, []string{InlineCode(f.Env), InlineCode(f.Key)})
		}
	}
	w.Table([]string{"Variable", "Key"}, env)

	w.Header(2, "Exit Status")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Success"},
		{InlineCode("1"), "Parse error, failed check or lint findings; details go to stderr"},
	})
	return w
}

func commandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	w.Paragraph(cmp.Or(cmd.Long, cmd.Short))

	w.Header(2, "Usage")
	use := cmd.UseLine()
	if cmd.HasSubCommands() {
		use = "sqlcols " + cmd.Name() + " <subcommand> [flags]"
	}
	w.CodeBlock("bash", use)

	if len(cmd.Aliases) > 0 {
		w.Header(2, "Aliases")
		aliases := make([]string, len(cmd.Aliases))
		for i, a := range cmd.Aliases {
			aliases[i] = InlineCode(a)
		}
		w.BulletList(aliases)
	}

	if cmd.HasSubCommands() {
		w.Header(2, "Subcommands")
		var subs [][]string
		for _, sub := range visibleCommands(cmd) {
			subs = append(subs, []string{InlineCode(sub.Name()), cleanDescription(sub.Short)})
		}
		w.Table([]string{"Subcommand", "Description"}, subs)
	}

	if cmd.HasLocalFlags() {
		w.Header(2, "Flags")
		flagTable(w, cmd.LocalFlags())
	}
	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Flags")
		flagTable(w, cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}
	return w
}

func visibleCommands(parent *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, cmd := range parent.Commands() {
		switch {
		case cmd.Hidden, cmd.Name() == "help", cmd.Name() == "__complete":
		default:
			out = append(out, cmd)
		}
	}
	return out
}

func flagTable(w *MarkdownWriter, fs *pflag.FlagSet) {
	var rows [][]string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		short, def := "", f.DefValue
		if f.Shorthand != "" {
			short = "-" + f.Shorthand
		}
		if def != "" && f.Value.Type() == "string" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{InlineCode("--" + f.Name), short, def, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Flag", "Short", "Default", "Description"}, rows)
}

// dedent strips the indentation shared by every non-blank line.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	cut := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if cut < 0 || n < cut {
			cut = n
		}
	}
	for i, l := range lines {
		if len(l) >= cut && cut > 0 {
			lines[i] = l[cut:]
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
