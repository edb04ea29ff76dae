package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgallais/todo/internal/model"
	"github.com/rgallais/todo/internal/store/jsonstore"
)

func sampleTodos() []model.Todo {
	now := time.Now()
	return []model.Todo{
		{ID: 1, Title: "buy milk", Completed: true, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Title: "write report", Description: "quarterly numbers", CreatedAt: now, UpdatedAt: now},
		{ID: 4, Title: "call dentist", CreatedAt: now, UpdatedAt: now},
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID("7")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	for _, bad := range []string{"abc", "", "0", "-3", "1.5"} {
		_, err := parseID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitOK, exitCode(nil))

	// Runtime failures exit 1, including unknown ids.
	assert.Equal(t, ExitRuntime, exitCode(&jsonstore.IOError{Op: "write", Path: "x", Err: errors.New("boom")}))
	assert.Equal(t, ExitRuntime, exitCode(&jsonstore.NotFoundError{ID: 9}))

	// Caller mistakes exit 2.
	assert.Equal(t, ExitUsage, exitCode(usagef("add: empty title")))
	assert.Equal(t, ExitUsage, exitCode(errors.New(`unknown command "frobnicate" for "todo"`)))

	_, err := parseID("abc")
	assert.Equal(t, ExitUsage, exitCode(err))

	err = exactArgs(1)(doneCmd, nil)
	assert.Equal(t, ExitUsage, exitCode(err))

	err = minimumArgs(1)(addCmd, nil)
	assert.Equal(t, ExitUsage, exitCode(err))

	err = noArgs(lsCmd, []string{"extra"})
	assert.Equal(t, ExitUsage, exitCode(err))
}

func TestStats(t *testing.T) {
	t.Parallel()

	done, pending := stats(sampleTodos())
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)

	done, pending = stats(nil)
	assert.Zero(t, done)
	assert.Zero(t, pending)
}

func TestFlatLines(t *testing.T) {
	t.Parallel()

	lines := flatLines(sampleTodos())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "buy milk")
	assert.Contains(t, lines[1], "quarterly numbers")
	// Ids render, not positions.
	assert.Contains(t, lines[2], "4.")

	empty := flatLines(nil)
	require.Len(t, empty, 1)
	assert.Contains(t, empty[0], "no todos")
}

func TestGroupLines(t *testing.T) {
	t.Parallel()

	lines := groupLines(sampleTodos())
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Pending")
	assert.Contains(t, joined, "Done")

	// Pending section comes first and holds the two open todos.
	pendIdx := strings.Index(joined, "write report")
	doneIdx := strings.Index(joined, "buy milk")
	assert.Less(t, pendIdx, doneIdx)
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	ok, err := confirm(strings.NewReader("y\n"), "Sure?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = confirm(strings.NewReader("no\n"), "Sure?")
	require.NoError(t, err)
	assert.False(t, ok)

	// Garbage answers re-prompt until a valid one arrives.
	ok, err = confirm(strings.NewReader("maybe\nyes\n"), "Sure?")
	require.NoError(t, err)
	assert.True(t, ok)
}
