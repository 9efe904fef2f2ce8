package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/html2ans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_StoryLifecycle(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	ctx := context.Background()
	article := `<html><body><article><h2>Launch</h2><p>The rocket lifted off.</p></article></body></html>`

	// convert --save stores the story and prints its ID
	stdout := &bytes.Buffer{}
	err := m.Run(ctx, []string{"convert", "--save", "--title", "Launch day"}, strings.NewReader(article), stdout, &bytes.Buffer{})
	require.NoError(t, err)

	var converted convertedStory
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &converted))
	require.NotEmpty(t, converted.ID)
	require.Len(t, converted.ContentElements, 2)

	// Each Run reopens the same database file
	stdout.Reset()
	require.NoError(t, m.Run(ctx, []string{"list"}, nil, stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), converted.ID)
	assert.Contains(t, stdout.String(), "Launch day")

	stdout.Reset()
	require.NoError(t, m.Run(ctx, []string{"show", converted.ID, "--format", "markdown"}, nil, stdout, &bytes.Buffer{}))
	assert.Equal(t, "# Launch day\n\n## Launch\n\nThe rocket lifted off.\n", stdout.String())

	stdout.Reset()
	require.NoError(t, m.Run(ctx, []string{"delete", converted.ID, "--force"}, nil, stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "Deleted story")

	err = m.Run(ctx, []string{"show", converted.ID}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, html2ans.ENOTFOUND, html2ans.ErrorCode(err))
}

func TestMain_Run_ConvertWithoutSaveSkipsDatabase(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	m.DBPath = filepath.Join(t.TempDir(), "missing-dir", "nested", "never.db")

	stdout := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"convert"}, strings.NewReader("<p>hi</p>"), stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"content": "hi"`)
	assert.Nil(t, m.DB)
}

func TestMain_Run_ConfigFileSetsDefaults(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	require.NoError(t, os.WriteFile(m.ConfigPath, []byte("start_tag: article\n"), 0644))

	stdout := &bytes.Buffer{}
	input := `<body><p>outside</p><article><p>inside</p></article></body>`
	err := m.Run(context.Background(), []string{"convert"}, strings.NewReader(input), stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "inside")
	assert.NotContains(t, stdout.String(), "outside")
}

func TestMain_Run_InvalidConfig(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	require.NoError(t, os.WriteFile(m.ConfigPath, []byte("extractor: magic\n"), 0644))

	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"parsers"}, nil, &bytes.Buffer{}, stderr)

	assert.Equal(t, html2ans.EINVALID, html2ans.ErrorCode(err))
	assert.Contains(t, stderr.String(), "HTML2ANS_CONFIG")
}
