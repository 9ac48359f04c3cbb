package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/batchcli/internal/batch"
	"github.com/maxkimambo/batchcli/internal/taskmanager"
)

var interactiveDemo bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in fried egg batch",
	Long: `Runs a built-in batch of seven tasks that cook a fried egg. Each task prints "...".
With --interactive the batch also asks whether the gas is open and how much salt to add.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	addRunFlags(demoCmd)
	demoCmd.Flags().BoolVarP(&interactiveDemo, "interactive", "i", false, "Ask questions during the demo")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := createRunConfig(cmd, "")
	if err != nil {
		return err
	}

	return executeBatch(cmd, func(ctx context.Context) (*taskmanager.RunResult, error) {
		return batch.RunTasks(ctx, cfg, batch.DemoTasks(interactiveDemo))
	})
}
