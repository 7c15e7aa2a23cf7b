package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs one semlist invocation against the database directory dir,
// the way the single-shot binary would, and returns stdout.
func execute(t *testing.T, dir string, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(append(args, "--dir", dir))

	err := root.Execute()
	return out.String(), err
}

func setupHome(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEMLIST_DIR", "")
	t.Setenv("SEMLIST_LOG_LEVEL", "")
	t.Setenv("SEMLIST_LOG_FORMAT", "json")
	return t.TempDir()
}

func TestWorkflow(t *testing.T) {
	dir := setupHome(t)

	out, err := execute(t, dir, nil, "new", "Seminar")
	require.NoError(t, err)
	assert.Contains(t, out, `Database "Seminar" created`)

	_, err = execute(t, dir, nil, "activate", "Seminar")
	require.NoError(t, err)

	out, err = execute(t, dir, nil, "add", `"John Q. Public" <jqp@ku.ac.ae>; ann@uni.edu`)
	require.NoError(t, err)
	assert.Contains(t, out, "Added John Q. Public <jqp@ku.ac.ae>;")
	assert.Contains(t, out, "Added 2 new entry(ies)")

	// A duplicate is reported, not fatal.
	out, err = execute(t, dir, nil, "add", "JQP@ku.ac.ae")
	require.NoError(t, err)
	assert.Contains(t, out, "Skipping duplicate: jqp@ku.ac.ae")
	assert.Contains(t, out, "No new entries to add.")

	out, err = execute(t, dir, nil, "print", "all")
	require.NoError(t, err)
	assert.Equal(t, "John Q. Public <jqp@ku.ac.ae>;\n<ann@uni.edu>;\n", out)

	out, err = execute(t, dir, nil, "check", `ac\.ae$`)
	require.NoError(t, err)
	assert.Contains(t, out, "John Q. Public <jqp@ku.ac.ae>;")
	assert.NotContains(t, out, "ann@uni.edu")

	out, err = execute(t, dir, nil, "batches")
	require.NoError(t, err)
	assert.Contains(t, out, "Number of batches: 1")

	out, err = execute(t, dir, nil, "stat")
	require.NoError(t, err)
	assert.Contains(t, out, "Seminar")
	assert.Contains(t, out, "0 (consistent)")

	out, err = execute(t, dir, nil, "rem", "ann@uni.edu")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed ann@uni.edu")

	out, err = execute(t, dir, nil, "rem", "missing@nowhere.com")
	require.NoError(t, err)
	assert.Contains(t, out, "was not found")
}

func TestPrint(t *testing.T) {
	dir := setupHome(t)
	_, err := execute(t, dir, nil, "new", "MailingList")
	require.NoError(t, err)
	_, err = execute(t, dir, nil, "add", "a@x.com; b@x.com")
	require.NoError(t, err)

	t.Run("single batch", func(t *testing.T) {
		out, err := execute(t, dir, nil, "print", "1")
		require.NoError(t, err)
		assert.Equal(t, "<a@x.com>;\n<b@x.com>;\n", out)
	})

	t.Run("unknown batch", func(t *testing.T) {
		_, err := execute(t, dir, nil, "print", "9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch not found")
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := execute(t, dir, nil, "print", "first")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid batch number")
	})

	t.Run("to file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "recipients.txt")
		out, err := execute(t, dir, nil, "print", "all", target)
		require.NoError(t, err)
		assert.Contains(t, out, "Wrote")

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "<a@x.com>;\n<b@x.com>;\n", string(data))
	})
}

func TestOptimizeCommand(t *testing.T) {
	dir := setupHome(t)
	_, err := execute(t, dir, nil, "new", "MailingList")
	require.NoError(t, err)
	_, err = execute(t, dir, nil, "add", "a@x.com; b@x.com")
	require.NoError(t, err)

	out, err := execute(t, dir, nil, "optimize")
	require.NoError(t, err)
	assert.Contains(t, out, "already optimal")
}

func TestMissingActiveDatabase(t *testing.T) {
	dir := setupHome(t)

	_, err := execute(t, dir, nil, "add", "a@x.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestDelete(t *testing.T) {
	t.Run("declined by default", func(t *testing.T) {
		dir := setupHome(t)
		_, err := execute(t, dir, nil, "new", "Seminar")
		require.NoError(t, err)

		out, err := execute(t, dir, strings.NewReader("\n"), "del", "Seminar")
		require.NoError(t, err)
		assert.Contains(t, out, "cancelled")

		_, err = os.Stat(filepath.Join(dir, "Seminar.json"))
		assert.NoError(t, err)
	})

	t.Run("confirmed with yes", func(t *testing.T) {
		dir := setupHome(t)
		_, err := execute(t, dir, nil, "new", "Seminar")
		require.NoError(t, err)

		out, err := execute(t, dir, strings.NewReader("yes\n"), "del", "Seminar")
		require.NoError(t, err)
		assert.Contains(t, out, "deleted")

		_, err = os.Stat(filepath.Join(dir, "Seminar.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("skipped with --yes flag", func(t *testing.T) {
		dir := setupHome(t)
		_, err := execute(t, dir, nil, "new", "Seminar")
		require.NoError(t, err)

		out, err := execute(t, dir, nil, "del", "Seminar", "--yes")
		require.NoError(t, err)
		assert.Contains(t, out, "deleted")
	})
}

func TestActivate(t *testing.T) {
	dir := setupHome(t)
	_, err := execute(t, dir, nil, "new", "Alpha")
	require.NoError(t, err)

	out, err := execute(t, dir, nil, "activate", "Beta")
	require.Error(t, err)
	assert.Contains(t, out, "Available databases:")
	assert.Contains(t, out, "Alpha.json")
}

func TestConfigShow(t *testing.T) {
	dir := setupHome(t)

	out, err := execute(t, dir, nil, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Database directory: "+dir)
	assert.Contains(t, out, "Active database:    MailingList.json")
	assert.Contains(t, out, "Database exists:    no")
}

func TestCheckBadPattern(t *testing.T) {
	dir := setupHome(t)
	_, err := execute(t, dir, nil, "new", "MailingList")
	require.NoError(t, err)

	_, err = execute(t, dir, nil, "check", "(")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid search pattern")
}
