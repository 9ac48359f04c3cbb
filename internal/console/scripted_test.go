package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
)

func TestScripted_AnswersInOrder(t *testing.T) {
	scripted := NewScripted("a", "b")

	first, err := scripted.Ask("q1")
	require.NoError(t, err)
	second, err := scripted.Ask("q2")
	require.NoError(t, err)

	assert.Equal(t, "a", first)
	assert.Equal(t, "b", second)
	assert.Equal(t, 0, scripted.Remaining())
	assert.Equal(t, []string{"q1", "q2"}, scripted.Asked())
}

func TestScripted_Transcript(t *testing.T) {
	scripted := NewScripted("y")

	scripted.Log("[ 1/1 ] task")
	_, err := scripted.Ask("[  ?  ] ok? (Y|N) [Y]")
	require.NoError(t, err)
	scripted.Log("[ ... ] done")

	assert.Equal(t, []string{"[ 1/1 ] task", "[ ... ] done"}, scripted.Logged())
	assert.Equal(t, []string{"[ 1/1 ] task", "[  ?  ] ok? (Y|N) [Y]", "[ ... ] done"}, scripted.Transcript())
}

func TestScripted_Exhausted(t *testing.T) {
	scripted := NewScripted()

	_, err := scripted.Ask("q")

	assert.ErrorIs(t, err, batcherrors.ErrConsoleRead)
	assert.ErrorIs(t, err, ErrNoMoreAnswers)
}

func TestScripted_Fallback(t *testing.T) {
	scripted := NewScripted("first").WithFallback(NewScripted("from fallback"))

	first, err := scripted.Ask("q1")
	require.NoError(t, err)
	second, err := scripted.Ask("q2")
	require.NoError(t, err)

	assert.Equal(t, "first", first)
	assert.Equal(t, "from fallback", second)
}

func TestScripted_Echo(t *testing.T) {
	var out bytes.Buffer
	scripted := NewScripted("N").WithEcho(&out)

	scripted.Log("[ ... ] hi")
	_, err := scripted.Ask("[  ?  ] go? (Y|N) [Y]")
	require.NoError(t, err)

	assert.Equal(t, "[ ... ] hi\n[  ?  ] go? (Y|N) [Y] N\n", out.String())
}

func TestScripted_DoesNotShareCallerSlice(t *testing.T) {
	answers := []string{"x"}
	scripted := NewScripted(answers...)

	answers[0] = "changed"
	answer, err := scripted.Ask("q")

	require.NoError(t, err)
	assert.Equal(t, "x", answer)
}
