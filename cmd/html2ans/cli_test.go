package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/html2ans/cmd/html2ans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedCommands = []string{"convert", "parsers", "list", "show", "delete"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	// Kong prints help even if Parse returns an error
	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ConvertFlags(t *testing.T) {
	t.Parallel()

	t.Run("parses files and flags", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"convert", "a.html", "b.html", "--start-tag", "article", "--strict", "-f", "markdown", "-c", "2"})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.html", "b.html"}, cli.Convert.Files)
		assert.Equal(t, "article", cli.Convert.StartTag)
		assert.True(t, cli.Convert.Strict)
		assert.Equal(t, "markdown", cli.Convert.Format)
		assert.Equal(t, 2, cli.Convert.Concurrency)
	})

	t.Run("defaults format to json", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"convert"})
		require.NoError(t, err)

		assert.Equal(t, "json", cli.Convert.Format)
		assert.Empty(t, cli.Convert.Files)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"convert", "--format", "xml"})
		require.Error(t, err)
	})
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// --help should return nil (success) and show commands
	err := m.Run(context.Background(), []string{"--help"}, strings.NewReader(""), stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}

	// Verify Kong-style formatting (Kong has "Usage:" prefix and "Flags:" section)
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	err := m.Run(context.Background(), nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

// newTestMain returns a Main isolated from the user's config and database.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	dir := t.TempDir()
	m := main.NewMain()
	m.ConfigPath = filepath.Join(dir, "config.yaml")
	m.DBPath = filepath.Join(dir, "test.db")
	return m
}
