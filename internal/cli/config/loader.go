package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// configFileNames are tried in order in the working directory.
var configFileNames = []string{DefaultFileName, "sqlcols.yml"}

var (
	k              = koanf.New(".")
	configFileUsed string
)

// ResetConfig forgets the last load.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
}

// GetConfigFileUsed returns the file the last LoadConfig read, or "".
func GetConfigFileUsed() string {
	return configFileUsed
}

// LoadConfig layers, lowest to highest: built-in defaults, the config
// file, SQLCOLS_* variables, then flags the user actually set.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	ResetConfig()
	configFileUsed = locateConfigFile(cfgFile)

	layers := []struct {
		name string
		load func() error
	}{
		{"defaults", func() error {
			return k.Load(confmap.Provider(map[string]any{
				"dialect":    DefaultDialect,
				"output":     DefaultOutput,
				"log_level":  DefaultLogLevel,
				"log_format": DefaultLogFormat,
			}, "."), nil)
		}},
		{"config file " + configFileUsed, func() error {
			if configFileUsed == "" {
				return nil
			}
			return k.Load(file.Provider(configFileUsed), yaml.Parser())
		}},
		{"environment", func() error {
			return k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		}},
		{"flags", func() error {
			if flags == nil {
				return nil
			}
			return k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
				if !f.Changed || f.Name == "config" {
					return "", nil
				}
				return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
			}), nil)
		}},
	}
	for _, l := range layers {
		if err := l.load(); err != nil {
			return nil, fmt.Errorf("load %s: %w", l.name, err)
		}
	}

	cfg, err := decode()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps SQLCOLS_LOG_LEVEL to log_level.
func envKey(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
}

func locateConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// decode unmarshals the merged layers. Log levels decode through
// slog.Level's UnmarshalText.
func decode() (*Config, error) {
	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimStringHook,
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	for _, s := range []*string{&cfg.Dialect, &cfg.Output, &cfg.LogFormat} {
		*s = strings.ToLower(*s)
	}
	return &cfg, nil
}

// trimStringHook strips surrounding whitespace from string values.
func trimStringHook(from, _ reflect.Type, data any) (any, error) {
	if s, ok := data.(string); ok && from.Kind() == reflect.String {
		return strings.TrimSpace(s), nil
	}
	return data, nil
}
