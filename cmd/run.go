package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/batchcli/internal/batch"
	"github.com/maxkimambo/batchcli/internal/logger"
	"github.com/maxkimambo/batchcli/internal/taskmanager"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run the tasks of a batch script",
	Long: `Runs the tasks described in a YAML (.yaml, .yml) or TOML (.toml) batch script,
in order, and stops at the first task that fails.

Questions are read from the terminal. Use --answer to provide answers up front,
in the order the questions are asked, and --yes to accept every default.

Example:
batchcli run deploy.yaml
batchcli run deploy.yaml --answer production --answer y
batchcli run nightly.toml --yes --quiet
`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	addRunFlags(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := createRunConfig(cmd, args[0])
	if err != nil {
		return err
	}

	logger.Op.WithFields(map[string]interface{}{"script": cfg.ScriptPath}).Debug("Starting batch")

	return executeBatch(cmd, func(ctx context.Context) (*taskmanager.RunResult, error) {
		return batch.Run(ctx, cfg)
	})
}
