package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "grevocab" {
		t.Errorf("Expected Use to be 'grevocab', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "GRE Vocabulary") {
		t.Errorf("Expected Short description to contain 'GRE Vocabulary'")
	}

	// Test that the persistent config flag is set up
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Expected persistent flag 'config' to exist")
	}

	// Test that both subcommands are registered
	subcommands := map[string]bool{}
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"build", "enrich"} {
		if !subcommands[name] {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}

func TestBuildCommandFlags(t *testing.T) {
	flags := NewFlags()
	cmd := newBuildCommand(flags)

	flagTests := []struct {
		name       string
		defaultVal string
	}{
		{"input", "data/3000.xlsx"},
		{"output", "out/gre_vocabulary.apkg"},
		{"deck-name", "GRE Vocabulary"},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if flag = cmd.Flags().Lookup(tt.name); flag == nil {
				t.Fatalf("Expected flag %s to exist", tt.name)
			}
			if flag.DefValue != tt.defaultVal {
				t.Errorf("Expected default %s for flag %s, got %s", tt.defaultVal, tt.name, flag.DefValue)
			}
		})
	}
}

func TestEnrichCommandFlags(t *testing.T) {
	flags := NewFlags()
	cmd := newEnrichCommand(flags)

	flagTests := []struct {
		name       string
		defaultVal string
	}{
		{"deck-name", "GRE Vocabulary"},
		{"anki-url", "http://localhost:8765"},
		{"dict-url", "https://dict.meowrain.cn/api/dictionary/en-cn/"},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if flag = cmd.Flags().Lookup(tt.name); flag == nil {
				t.Fatalf("Expected flag %s to exist", tt.name)
			}
			if flag.DefValue != tt.defaultVal {
				t.Errorf("Expected default %s for flag %s, got %s", tt.defaultVal, tt.name, flag.DefValue)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		cfgFile   string
		setupFunc func(t *testing.T) string
	}{
		{
			name:    "with config file",
			cfgFile: "test-config.yaml",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `deck:
  name: Custom GRE Deck
anki:
  url: http://localhost:9999`
				err := os.WriteFile(cfgPath, []byte(content), 0644)
				if err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name:    "without config file",
			cfgFile: "",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)
			if tt.cfgFile != "" && cfgPath != "" {
				tt.cfgFile = cfgPath
			}

			InitConfig(tt.cfgFile)

			// Test environment variable prefix
			os.Setenv("GREVOCAB_TEST_VAR", "test-value")
			defer os.Unsetenv("GREVOCAB_TEST_VAR")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			if tt.cfgFile != "" {
				if viper.GetString("deck.name") != "Custom GRE Deck" {
					t.Errorf("Expected deck.name from config file, got %q", viper.GetString("deck.name"))
				}
			}
		})
	}
}

func TestApplyConfigString(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	newCommand := func(def string) (*cobra.Command, *string) {
		target := def
		cmd := &cobra.Command{}
		cmd.Flags().StringVar(&target, "deck-name", def, "")
		return cmd, &target
	}

	t.Run("config overrides default", func(t *testing.T) {
		viper.Reset()
		viper.Set("deck.name", "From Config")

		cmd, target := newCommand("GRE Vocabulary")
		applyConfigString(cmd, "deck-name", "deck.name", target)

		if *target != "From Config" {
			t.Errorf("Expected config value, got %q", *target)
		}
	})

	t.Run("explicit flag wins over config", func(t *testing.T) {
		viper.Reset()
		viper.Set("deck.name", "From Config")

		cmd, target := newCommand("GRE Vocabulary")
		if err := cmd.Flags().Set("deck-name", "From Flag"); err != nil {
			t.Fatalf("Failed to set flag: %v", err)
		}
		applyConfigString(cmd, "deck-name", "deck.name", target)

		if *target != "From Flag" {
			t.Errorf("Expected flag value to win, got %q", *target)
		}
	})

	t.Run("default survives without config", func(t *testing.T) {
		viper.Reset()

		cmd, target := newCommand("GRE Vocabulary")
		applyConfigString(cmd, "deck-name", "deck.name", target)

		if *target != "GRE Vocabulary" {
			t.Errorf("Expected default value, got %q", *target)
		}
	})
}
