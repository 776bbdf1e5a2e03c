// internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javajoker/product-catalog/internal/client"
)

type rootOptions struct {
	configPath string
	server     string
	settings   *Settings
}

// NewRootCommand builds the catalogctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Manage the product catalog",
		Long:          "catalogctl lists, creates, edits and deletes products on a catalog server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings(opts.configPath)
			if err != nil {
				return err
			}
			if opts.server != "" {
				settings.BaseURL = opts.server
			}
			if err := settings.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			opts.settings = settings
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", DefaultSettingsPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&opts.server, "server", "", "catalog server URL (overrides base_url)")

	rootCmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newCreateCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
	)
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, "%v", err)
		return err
	}
	return nil
}

func (o *rootOptions) client() *client.Client {
	return client.NewClient(o.settings.BaseURL,
		client.WithTimeout(time.Duration(o.settings.TimeoutSeconds)*time.Second),
		client.WithLanguage(o.settings.Language),
	)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}
