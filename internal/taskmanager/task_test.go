package taskmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestSameTask_ComparesNames(t *testing.T) {
	a := NewTask("T1", nil)
	b := &mockTask{name: "T1", status: StatusFailed}
	c := NewTask("T2", nil)

	assert.True(t, SameTask(a, b))
	assert.False(t, SameTask(a, c))
	assert.False(t, SameTask(a, nil))
	assert.True(t, SameTask(nil, nil))
}

func TestFuncTask_Run(t *testing.T) {
	called := false
	task := NewTask("Put oil in the pan", func(ctx context.Context, ch Channel) (Status, error) {
		called = true
		return StatusFailed, nil
	})

	status, err := task.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, StatusFailed, status)
	assert.Equal(t, "Put oil in the pan", task.Name())
	assert.Equal(t, "Put oil in the pan", task.String())
}

func TestFuncTask_NilHandlerSucceeds(t *testing.T) {
	status, err := NewTask("noop", nil).Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, StatusOK, status)
}
