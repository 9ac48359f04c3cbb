package script

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxkimambo/batchcli/internal/console"
	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
	"github.com/maxkimambo/batchcli/internal/progress"
	"github.com/maxkimambo/batchcli/internal/taskmanager"
)

// fakeCommand records argv and replies with canned output
type fakeCommand struct {
	calls  [][]string
	output string
	err    error
}

func (f *fakeCommand) run(ctx context.Context, argv []string) ([]byte, error) {
	f.calls = append(f.calls, argv)
	return []byte(f.output), f.err
}

func runScript(t *testing.T, script *Script, command CommandFunc, answers ...string) (*taskmanager.RunResult, *console.Scripted, *taskmanager.SharedContext, error) {
	t.Helper()
	require.NoError(t, script.Validate())

	scripted := console.NewScripted(answers...)
	shared := taskmanager.NewSharedContext()
	runner := taskmanager.NewRunner(progress.NewPresenter(scripted, nil))
	for _, task := range script.Build(shared, command) {
		runner.AddTask(task)
	}

	result, err := runner.Run(context.Background())
	return result, scripted, shared, err
}

func TestBuild_StoredAnswersExpandInLaterTasks(t *testing.T) {
	command := &fakeCommand{output: "deployed\n\nall good\n"}
	script := &Script{Tasks: []Task{
		{Name: "Pick target", Steps: []Step{
			{Select: &SelectStep{Question: "Which environment?", Values: []string{"staging", "production"}, Store: "env"}},
		}},
		{Name: "Ship", Steps: []Step{
			{Message: "Deploying to ${env}"},
			{Run: []string{"deploy", "--env", "$env"}},
		}},
	}}

	result, scripted, shared, err := runScript(t, script, command.run, "production")

	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Equal(t, "production", shared.GetString("env"))
	assert.Equal(t, [][]string{{"deploy", "--env", "production"}}, command.calls)
	assert.Equal(t, []string{
		"[ 1/2 ] Pick target",
		"[  ?  ] Which environment? [staging]",
		"[ 2/2 ] Ship",
		"[ ... ] Deploying to production",
		"[ ... ] deployed",
		"[ ... ] all good",
	}, scripted.Transcript())
}

func TestBuild_ConfirmRefusalFailsTask(t *testing.T) {
	script := &Script{Tasks: []Task{
		{Name: "Turn fire on", Steps: []Step{
			{Confirm: &ConfirmStep{Question: "Is the gas open?", Store: "gas"}},
			{Message: "never printed"},
		}},
		{Name: "Break the egg"},
	}}

	result, scripted, shared, err := runScript(t, script, nil, "n")

	require.NoError(t, err)
	assert.Equal(t, "Turn fire on", result.FailedTask)
	assert.Equal(t, "false", shared.GetString("gas"))
	assert.NotContains(t, scripted.Transcript(), "[ ... ] never printed")
	assert.Equal(t, taskmanager.StatusSkipped, result.Tasks[1].Status)
}

func TestBuild_ContinueKeepsGoing(t *testing.T) {
	script := &Script{Tasks: []Task{
		{Name: "Clean up", Steps: []Step{
			{Negate: &ConfirmStep{Question: "Keep the logs?", Store: "drop_logs", Continue: true}},
			{Message: "drop logs: ${drop_logs}"},
		}},
	}}

	result, scripted, _, err := runScript(t, script, nil, "Y")

	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Equal(t, []string{
		"[ 1/1 ] Clean up",
		"[  ?  ] Keep the logs? (Y|N) [N]",
		"[ ... ] drop logs: false",
	}, scripted.Transcript())
}

func TestBuild_AskAndChoose(t *testing.T) {
	script := &Script{Tasks: []Task{
		{Name: "Season", Steps: []Step{
			{Ask: &AskStep{Question: "How much salt?", Options: []string{"none", "pinch"}, Default: "pinch", Store: "salt"}},
			{Choose: &SelectStep{Question: "Which plate?", Values: []string{"white", "blue"}, Store: "plate"}},
			{Message: "${salt} on a ${plate} plate"},
		}},
	}}

	result, scripted, _, err := runScript(t, script, nil, "", "2")

	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Equal(t, "[ ... ] pinch on a blue plate", scripted.Logged()[1])
}

func TestBuild_FailStep(t *testing.T) {
	script := &Script{Tasks: []Task{
		{Name: "Check", Steps: []Step{{Fail: "the pan is missing"}}},
	}}

	result, scripted, _, err := runScript(t, script, nil)

	require.NoError(t, err)
	assert.Equal(t, "Check", result.FailedTask)
	assert.Equal(t, []string{"[ 1/1 ] Check", "[ ... ] the pan is missing"}, scripted.Logged())
}

func TestBuild_CommandFailureFailsTask(t *testing.T) {
	command := &fakeCommand{output: "partial output\n", err: errors.New("exit status 3")}
	script := &Script{Tasks: []Task{
		{Name: "Build", Steps: []Step{{Run: []string{"make", "all"}}}},
	}}

	result, scripted, _, err := runScript(t, script, command.run)

	require.NoError(t, err)
	assert.Equal(t, "Build", result.FailedTask)
	assert.Equal(t, []string{
		"[ 1/1 ] Build",
		"[ ... ] partial output",
		"[ ... ] make failed: exit status 3",
	}, scripted.Logged())
}

func TestBuild_ConsoleErrorAbortsRun(t *testing.T) {
	script := &Script{Tasks: []Task{
		{Name: "Ask", Steps: []Step{{Ask: &AskStep{Question: "name?"}}}},
	}}

	_, _, _, err := runScript(t, script, nil)

	assert.ErrorIs(t, err, batcherrors.ErrConsoleRead)
}

func TestBuild_UnknownNamesFallBackToEnvironment(t *testing.T) {
	t.Setenv("BATCHCLI_TEST_COOK", "Alex")
	script := &Script{Tasks: []Task{
		{Name: "Greet", Steps: []Step{{Message: "hello ${BATCHCLI_TEST_COOK}${missing}"}}},
	}}

	_, scripted, _, err := runScript(t, script, nil)

	require.NoError(t, err)
	assert.Equal(t, "[ ... ] hello Alex", scripted.Logged()[1])
}

func TestBuild_CancelledContextStopsSteps(t *testing.T) {
	script := &Script{Tasks: []Task{{Name: "a", Steps: []Step{{Message: "x"}}}}}
	tasks := script.Build(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := tasks[0].Run(ctx, progress.NewPresenter(console.NewScripted(), nil))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, taskmanager.StatusFailed, status)
}
