// Package cli implements the cgctl CLI commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Import project backends to register them via init()
	_ "github.com/cloudgraph-io/cgctl/pkg/project/backend/azurerm"
	_ "github.com/cloudgraph-io/cgctl/pkg/project/backend/gcs"
	_ "github.com/cloudgraph-io/cgctl/pkg/project/backend/local"
	_ "github.com/cloudgraph-io/cgctl/pkg/project/backend/s3"
)

var (
	cfgFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cgctl",
	Short: "Turn infrastructure diagrams into Terraform configuration",
	Long: `cgctl compiles infrastructure diagrams into AWS Terraform configuration.

It takes the node-and-edge diagrams produced by the CloudGraph editor,
resolves resource placement from the diagram's containment hierarchy, and
emits ready-to-plan HCL. Projects, provider option catalogs, and monthly
cost estimates are managed from the same tool.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cgctl/config.yaml)")
	rootCmd.PersistentFlags().String("backend", "local", "Project backend type (local, s3, gcs, azurerm)")
	rootCmd.PersistentFlags().StringArray("backend-config", nil, "Backend configuration (key=value)")

	// Bind to viper
	_ = viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
	viper.SetEnvPrefix("CGCTL")
	viper.AutomaticEnv()

	// Add subcommands
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newCostCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.cgctl")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// Read config file if it exists
	_ = viper.ReadInConfig()
}
