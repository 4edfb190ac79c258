// Package cli implements the autaxy command line tool, which parses Apple
// reports offline without running the HTTP server.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/autaxy/src/config"
	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/security/validation"
)

type rootOptions struct {
	envFile string
	verbose bool
}

// NewRootCmd builds the command tree. Each call returns independent flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "autaxy",
		Short: "Autaxy - normalize Apple App Store payment reports",
		Long: `Autaxy reads Apple App Store financial reports (the monthly comma-separated
summary or the tab-separated financial detail report) and converts them into a
normalized ledger or a statement document model.

Example Usage:
  autaxy parse report.txt                   # print the normalized report as JSON
  autaxy parse --output ledger report.txt   # print a ledger table
  cat report.txt | autaxy statement -       # build a statement from stdin`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadConfigFrom(opts.envFile)
			level := cfg.LogLevel
			if opts.verbose {
				level = "debug"
			}
			logger.InitLoggerTo(cmd.ErrOrStderr(), level)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env", "", "Path to an env file (default is ./.env)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newParseCmd(), newStatementCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readReportInput reads the report from a path, or from stdin when path is "-".
func readReportInput(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open report: %w", err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return validation.StripUnprintable(string(raw)), nil
}
