package cmd

import (
	"errors"
	"fmt"
	"os"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
	"github.com/maxkimambo/batchcli/internal/logger"
	"github.com/spf13/cobra"
)

var (
	debug    bool
	verbose  bool
	jsonLogs bool
	quiet    bool
	version  = "v0.1.0"

	rootCmd = &cobra.Command{
		Use:   "batchcli",
		Short: "Run a batch of tasks with uniform progress output and prompts",
		Long: `Run a list of named tasks one after the other, printing uniform progress lines
and asking for confirmations or selections along the way. The batch stops at the
first task that fails.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(verbose || debug, jsonLogs, quiet)
			logger.SetWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
)

// Execute runs the root command and prints the error that stopped it, if any.
// A failed task has already been reported and is not printed again.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ErrTaskFailed) {
		fmt.Fprint(os.Stderr, batcherrors.FormatForCLI(err))
	}
	return err
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(demoCmd)
}
