package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/leapstack-labs/sqlcols/internal/cli/config"
)

// ConfigField describes one key of sqlcols.yaml.
type ConfigField struct {
	Key         string
	Env         string
	Flag        string
	Type        string
	Default     string
	Description string
}

func envName(key string) string {
	return config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// configFields mirrors the koanf tags of config.Config.
func configFields() []ConfigField {
	def := config.Default()
	return []ConfigField{
		{Key: "dialect", Env: envName("dialect"), Flag: "--dialect", Type: "string", Default: def.Dialect, Description: "Registered dialect used for parsing and printing"},
		{Key: "output", Env: envName("output"), Flag: "--output", Type: "string", Default: def.Output, Description: "Output mode: auto, text, markdown, json, yaml"},
		{Key: "log_level", Env: envName("log_level"), Flag: "--log-level", Type: "string", Default: strings.ToLower(def.LogLevel.String()), Description: "Minimum log level: debug, info, warn, error"},
		{Key: "log_format", Env: envName("log_format"), Flag: "--log-format", Type: "string", Default: def.LogFormat, Description: "Log format: text, json"},
		{Key: "columns", Env: envName("columns"), Flag: "--columns", Type: "bool", Description: "Force COLUMNS support on or off for the selected dialect"},
		{Key: "lint.disabled", Type: "[]string", Description: "Rule IDs to disable"},
		{Key: "lint.severity", Type: "map[string]string", Description: "Per-rule severity overrides"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "sqlcols configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("sqlcols reads %s (or %s) from the working directory. "+
		"Pass %s to use a specific file.", InlineCode(config.DefaultFileName), InlineCode("sqlcols.yml"), InlineCode("--config")))

	w.Header(2, "Keys")
	headers := []string{"Key", "Type", "Default", "Flag", "Description"}
	var rows [][]string
	for _, f := range configFields() {
		defVal := "-"
		if f.Default != "" {
			defVal = InlineCode(f.Default)
		}
		flagName := "-"
		if f.Flag != "" {
			flagName = InlineCode(f.Flag)
		}
		rows = append(rows, []string{InlineCode(f.Key), f.Type, defVal, flagName, f.Description})
	}
	w.Table(headers, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `dialect: duckdb
output: text
log_level: info

lint:
  disabled: [CL04]
  severity:
    CL02: warning`)

	return w.Save(outDir, "configuration.md")
}
