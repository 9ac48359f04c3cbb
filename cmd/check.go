package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/maxkimambo/batchcli/internal/batch"
	"github.com/maxkimambo/batchcli/internal/logger"
	"github.com/maxkimambo/batchcli/internal/script"
	"github.com/maxkimambo/batchcli/internal/utils"
)

var checkCmd = &cobra.Command{
	Use:   "check <script>",
	Short: "Validate a batch script without running it",
	Long: `Loads and validates a batch script, then lists its tasks and the actions of
their steps. Nothing is run and no question is asked.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := batch.LoadScript(&batch.Config{ScriptPath: args[0], Fs: afero.NewOsFs()})
	if err != nil {
		logger.User.Failuref("%s is not a valid script", args[0])
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), describeScript(s))
	logger.User.Successf("%s is valid: %d tasks, %d steps", args[0], len(s.Tasks), s.StepCount())
	return nil
}

// describeScript renders one table row per task
func describeScript(s *script.Script) string {
	var sb strings.Builder
	if s.Name != "" {
		sb.WriteString(s.Name + "\n")
	}
	if s.Description != "" {
		sb.WriteString(s.Description + "\n")
	}

	table := utils.NewTableFormatter("#", "Task", "Steps", "Actions").AlignRight(2)
	for i, task := range s.Tasks {
		kinds := make([]string, 0, len(task.Steps))
		for _, step := range task.Steps {
			kinds = append(kinds, string(step.Kind()))
		}
		table.AddRow(fmt.Sprint(i+1), task.Name, fmt.Sprint(len(task.Steps)), strings.Join(kinds, ", "))
	}
	sb.WriteString(table.String())
	return sb.String()
}
