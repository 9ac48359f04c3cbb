package batch

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoTasks(t *testing.T) {
	var out bytes.Buffer
	cfg := &Config{AutoApprove: true, Stdout: &out}

	result, err := RunTasks(context.Background(), cfg, DemoTasks(false))

	require.NoError(t, err)
	assert.True(t, result.Success())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, "[ 1/7 ] Put oil in the pan", lines[0])
	assert.Equal(t, "[ ... ] ...", lines[1])
	assert.Equal(t, "[ 7/7 ] Add salt to the egg and eat it!", lines[12])
}

func TestDemoTasks_Interactive(t *testing.T) {
	var out bytes.Buffer
	cfg := &Config{Answers: []string{"", "2"}, Stdout: &out}

	result, err := RunTasks(context.Background(), cfg, DemoTasks(true))

	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Contains(t, out.String(), "[  ?  ] Is the gas open? (Y|N) [Y] \n")
	assert.Contains(t, out.String(), "[  ?  ] How much salt? [1] 2\n")
	assert.Contains(t, out.String(), "[ ... ] Adding a spoon, enjoy!\n")
}

func TestDemoTasks_NoGas(t *testing.T) {
	var out bytes.Buffer
	cfg := &Config{Answers: []string{"N"}, Stdout: &out}

	result, err := RunTasks(context.Background(), cfg, DemoTasks(true))

	require.NoError(t, err)
	assert.Equal(t, "Turn fire on", result.FailedTask)
	assert.Contains(t, out.String(), "[ ... ] No gas, no fire\n")
	assert.NotContains(t, out.String(), "Break the egg")
}
