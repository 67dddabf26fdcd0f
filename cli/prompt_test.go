package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantRoot      string
		wantTarget    string
		wantThreshold float64
		wantErr       bool
	}{
		{
			name:          "all answers",
			input:         "/data\n/data/dups\n0.75\n",
			wantRoot:      "/data",
			wantTarget:    "/data/dups",
			wantThreshold: 0.75,
		},
		{
			name:          "blank threshold keeps default",
			input:         "  /data  \n/data/dups\n\n",
			wantRoot:      "/data",
			wantTarget:    "/data/dups",
			wantThreshold: 0.9,
		},
		{
			name:          "no trailing newline",
			input:         "/data\n/data/dups\n1",
			wantRoot:      "/data",
			wantTarget:    "/data/dups",
			wantThreshold: 1,
		},
		{
			name:    "threshold not a number",
			input:   "/data\n/data/dups\nninety\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig
			var out bytes.Buffer

			err := Prompt(&config, strings.NewReader(tt.input), &out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoot, config.Root)
			assert.Equal(t, tt.wantTarget, config.Target)
			assert.Equal(t, tt.wantThreshold, config.Threshold)

			assert.Contains(t, out.String(), "Enter the parent folder path containing PDFs: ")
			assert.Contains(t, out.String(), "Enter the target folder path where duplicates will be deleted: ")
		})
	}
}

func TestPrompt_EOF(t *testing.T) {
	config := DefaultConfig
	err := Prompt(&config, strings.NewReader("/data\n"), io.Discard)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Empty(t, config.Root, "config must not be changed by an aborted prompt")
}
