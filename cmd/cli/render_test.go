package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/coderadar/internal/core"
)

func sampleResponse() *core.ReviewResponse {
	return &core.ReviewResponse{
		Success: true,
		Review:  "## Summary\nLooks good.",
		Metadata: &core.ReviewMetadata{
			ProcessingTime:   "12ms",
			ProcessingTimeMs: 12,
			CodeLength:       15,
			Timestamp:        "2024-01-01T00:00:00.000Z",
		},
	}
}

func TestPrintReview_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReview(&buf, sampleResponse(), formatJSON, false))

	var got core.ReviewResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sampleResponse().Metadata, *got.Metadata)
}

func TestPrintReview_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReview(&buf, sampleResponse(), formatYAML, false))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	meta, ok := got["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 15, meta["codeLength"])
}

func TestPrintReview_Raw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReview(&buf, sampleResponse(), formatMarkdown, true))
	assert.Contains(t, buf.String(), "## Summary\nLooks good.")
	assert.Contains(t, buf.String(), "REVIEW")
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"markdown", "json", "yaml"} {
		assert.True(t, validFormat(f), f)
	}
	assert.False(t, validFormat("xml"))
}

func TestReadSource(t *testing.T) {
	got, err := readSource("-", strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main"), 0o600))
	got, err = readSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "package main", got)

	_, err = readSource(filepath.Join(t.TempDir(), "missing.go"), nil)
	assert.Error(t, err)

	assert.Equal(t, "stdin", sourceName("-"))
	assert.Equal(t, path, sourceName(path))
}
