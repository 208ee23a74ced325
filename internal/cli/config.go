package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/config"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/logging"
)

// AddConfigCommand adds the config command and its subcommands.
func AddConfigCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize configuration",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	root.AddCommand(cmd)
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Show prints the configuration after merging defaults, the global config
file, the project config file, and environment variables. The API key is
redacted.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.AI.APIKey != "" {
				cfg.AI.APIKey = logging.RedactedValue
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, "failed to marshal config")
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the global config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.GlobalConfigPath()
			if err != nil {
				return err
			}

			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
				}
			}

			out, err := yaml.Marshal(config.Default())
			if err != nil {
				return errors.Wrap(err, "failed to marshal default config")
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return errors.Wrap(err, "failed to create config directory")
			}
			if err := os.WriteFile(path, out, 0o600); err != nil {
				return errors.Wrap(err, "failed to write config file")
			}

			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
