package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// ConfigKeyDefaultRegion is the viper/config key for the default compile
	// region.
	ConfigKeyDefaultRegion = "default_region"

	// ConfigKeyDefaultBackend is the viper/config key for the default project
	// backend.
	ConfigKeyDefaultBackend = "default_backend"

	// EnvDefaultRegion is the environment variable for the default region.
	EnvDefaultRegion = "CGCTL_REGION"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  `Get and set cgctl CLI configuration values stored in ~/.cgctl/config.yaml.`,
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigListCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.cgctl/config.yaml.

Available keys:
  default-region     The AWS region used when --region is not specified.
  default-backend    The project backend used when --backend is not specified.

Examples:
  cgctl config set default-region eu-west-2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			// Normalize key names: allow dashes in CLI, store with underscores
			viperKey := normalizeConfigKey(key)

			switch viperKey {
			case ConfigKeyDefaultRegion, ConfigKeyDefaultBackend:
				// valid
			default:
				return fmt.Errorf("unknown configuration key %q\n\nAvailable keys:\n  default-region\n  default-backend", key)
			}

			viper.Set(viperKey, value)
			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("Set %s = %s\n", key, value)
			return nil
		},
	}

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value from ~/.cgctl/config.yaml.

Examples:
  cgctl config get default-region`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			viperKey := normalizeConfigKey(key)

			value := viper.GetString(viperKey)
			if value == "" {
				fmt.Printf("%s is not set\n", key)
			} else {
				fmt.Println(value)
			}
			return nil
		},
	}

	return cmd
}

func newConfigListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long:  `List all configuration values from ~/.cgctl/config.yaml.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			region := viper.GetString(ConfigKeyDefaultRegion)
			backend := viper.GetString(ConfigKeyDefaultBackend)

			fmt.Println("Configuration:")
			if region == "" && backend == "" {
				fmt.Println("  (no values set)")
				return nil
			}
			if region != "" {
				fmt.Printf("  default-region = %s\n", region)
			}
			if backend != "" {
				fmt.Printf("  default-backend = %s\n", backend)
			}
			return nil
		},
	}

	return cmd
}

// resolveRegion resolves the compile region from multiple sources.
//
// Precedence (highest to lowest):
//  1. --region flag (explicit)
//  2. CGCTL_REGION environment variable
//  3. default_region from ~/.cgctl/config.yaml
//  4. Empty, letting the caller apply its own default
func resolveRegion(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envVal := os.Getenv(EnvDefaultRegion); envVal != "" {
		return envVal
	}
	return viper.GetString(ConfigKeyDefaultRegion)
}

// writeConfig writes the current viper config to the config file.
func writeConfig() error {
	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir := filepath.Join(home, ".cgctl")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		configPath = filepath.Join(configDir, "config.yaml")
	}

	return viper.WriteConfigAs(configPath)
}

// normalizeConfigKey converts CLI-style keys (with dashes) to viper-style keys (with underscores).
func normalizeConfigKey(key string) string {
	switch key {
	case "default-region":
		return ConfigKeyDefaultRegion
	case "default-backend":
		return ConfigKeyDefaultBackend
	default:
		return key
	}
}
