// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev-mohitbeniwal/metacat/config"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
)

var rootCmd = &cobra.Command{
	Use:   "metacat",
	Short: "metacat - data-quality console backend",
	Long: `metacat serves the data-quality console: per-session permission caching,
the test suite selector and the test suite details page, all backed by the
catalog REST API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return logger.InitLogger(logger.Options{
			Dir:        config.GetString("log.dir"),
			MaxSizeMB:  config.GetInt("log.maxSizeMB"),
			MaxBackups: config.GetInt("log.maxBackups"),
			MaxAgeDays: config.GetInt("log.maxAgeDays"),
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(testSuiteCmd)
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
