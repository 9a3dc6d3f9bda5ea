//go:build e2e && unix

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	// Run directly, not through the PTY, since it exits immediately
	out, err := tf.RunCommand("--help")
	require.NoError(t, err, "Help command should run without error")

	assert.Contains(t, out, "Usage")
	assert.Contains(t, out, "--sort")
	assert.Contains(t, out, "--search")
	assert.Contains(t, out, "list")
}

func TestListCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	out, err := tf.RunCommand("list", "--sort", "value", "--desc", "--search", "a")
	require.NoError(t, err, "list should succeed: %s", out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "Value ▼")
	assert.True(t, strings.HasPrefix(lines[1], "Master Puppeteer"), lines[1])
	assert.Equal(t, "9 characters found", lines[len(lines)-1])
}

func TestListCommandWithItemsFile(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	path, err := tf.WriteFile("items.toml", `
[[items]]
name = "Zeta"
value = "1k"

[[items]]
name = "Eta"
value = "900"
`)
	require.NoError(t, err)

	out, err := tf.RunCommand("list", "--items", path, "--sort", "value")
	require.NoError(t, err, "list should succeed: %s", out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[1], "Zeta"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Eta"), lines[2])
	assert.Equal(t, "2 characters found", lines[len(lines)-1])
}

func TestBadSortFlagFails(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	out, err := tf.RunCommand("list", "--sort", "price")
	require.Error(t, err)
	assert.Contains(t, out, "invalid --sort")
}
