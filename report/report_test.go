package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abiiranathan/pdfdedup/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReportFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "out.json", want: FormatJSON},
		{path: "out.JSON", want: FormatJSON},
		{path: "dir/out.yaml", want: FormatYAML},
		{path: "out.yml", want: FormatYAML},
		{path: "out.txt", wantErr: true},
		{path: "out", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ReportFormat(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func sampleReport() *Report {
	return &Report{
		RunID:     "4f1c7a8e-0000-4000-8000-000000000000",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Root:      "/data",
		Target:    "/data/b",
		Threshold: 0.9,
		Stats:     search.CollectStats{Total: 3, Extracted: 2, Empty: 1},
		Pairs: []search.SimilarPair{
			{First: "/data/a/x.pdf", Second: "/data/b/x.pdf", Score: 1, I: 0, J: 1},
		},
		Deletions: []DeletionEntry{
			{Path: "/data/b/x.pdf", Outcome: "deleted"},
		},
	}
}

func TestReport_SerializeJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, sampleReport().Serialize(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "/data/b", got["target"])
	assert.Equal(t, 0.9, got["threshold"])

	pairs := got["pairs"].([]any)
	require.Len(t, pairs, 1)
	assert.Equal(t, "/data/b/x.pdf", pairs[0].(map[string]any)["second"])
	assert.NotContains(t, got, "stopped")
}

func TestReport_SerializeYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yml")
	want := sampleReport()
	require.NoError(t, want.Serialize(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))

	got.CreatedAt = want.CreatedAt
	assert.Equal(t, *want, got)
}

func TestReport_SerializeBadExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	assert.Error(t, sampleReport().Serialize(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be created for an unsupported format")
}
