package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// knownConfigKeys are the settings dragen-qc reads, with the value
// shape each expects.
var knownConfigKeys = map[string]string{
	"ignore_samples": "comma-separated sample name glob patterns, e.g. 'undetermined*,T_*'",
	"format":         "default report format: table, csv or json",
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dragen-qc configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.dragen-qc.yaml.",
		Example: `  dragen-qc config                               # show all config
  dragen-qc config set ignore_samples 'undetermined*'  # exclude samples
  dragen-qc config get ignore_samples                  # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(args[0])
		},
	}
}

func runConfigShow() error {
	settings := viper.AllSettings()
	if len(settings) == 0 {
		fmt.Println("# No configuration set. Config file: ~/.dragen-qc.yaml")
		return nil
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func runConfigSet(key, value string) error {
	parsed, err := parseConfigValue(key, value)
	if err != nil {
		return err
	}
	viper.Set(key, parsed)

	// Ensure config file exists
	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".dragen-qc.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

// parseConfigValue validates the key and converts the raw value into
// the shape the report command expects.
func parseConfigValue(key, value string) (any, error) {
	if _, ok := knownConfigKeys[key]; !ok {
		keys := make([]string, 0, len(knownConfigKeys))
		for k := range knownConfigKeys {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(keys, ", "))
	}

	switch key {
	case "ignore_samples":
		var patterns []string
		for _, p := range strings.Split(value, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		return patterns, nil
	case "format":
		switch value {
		case "table", "csv", "json":
			return value, nil
		}
		return nil, fmt.Errorf("invalid format %q: %s", value, knownConfigKeys["format"])
	}
	return value, nil
}

func runConfigGet(key string) error {
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Println(val)
	return nil
}
