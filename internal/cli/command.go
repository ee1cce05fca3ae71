package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wxiaoyun/gre-prep/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grevocab",
		Short: "GRE Vocabulary Anki Deck Toolchain",
		Long: `grevocab builds and enriches GRE vocabulary Anki decks.

The build command converts a vocabulary spreadsheet into a ready-to-import
Anki deck package. The enrich command appends dictionary definitions to
the cards of an existing deck through the AnkiConnect add-on.

Examples:
  grevocab build                        # data/3000.xlsx -> out/gre_vocabulary.apkg
  grevocab build -i words.xlsx -o d.apkg
  grevocab enrich                       # enrich deck "GRE Vocabulary" via AnkiConnect`,
		Version: internal.Version,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.grevocab.yaml)")

	rootCmd.AddCommand(newBuildCommand(flags))
	rootCmd.AddCommand(newEnrichCommand(flags))

	return rootCmd
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".grevocab" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".grevocab")
	}

	// Environment variables
	viper.SetEnvPrefix("GREVOCAB")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// applyConfigString overrides a flag value with the config file value
// when the user did not set the flag on the command line.
func applyConfigString(cmd *cobra.Command, flagName, viperKey string, target *string) {
	if cmd.Flags().Changed(flagName) {
		return
	}
	if viper.IsSet(viperKey) {
		*target = viper.GetString(viperKey)
	}
}
