package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/abiiranathan/pdfdedup/pdf/pdftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineFlags(t *testing.T) {
	root := t.TempDir()
	config := DefaultConfig

	var got []Mode
	ctx := DefineFlags(&config, func(mode Mode) { got = append(got, mode) })

	subcmd, err := ctx.Parse([]string{"pdfdedup", "-c", "3", "clean", "--root", root, "--target", root, "--threshold", "0.75", "--policy", "cluster"})
	require.NoError(t, err)
	require.NotNil(t, subcmd)

	assert.Equal(t, root, config.Root)
	assert.Equal(t, root, config.Target)
	assert.Equal(t, 0.75, config.Threshold)
	assert.Equal(t, "cluster", config.Policy)
	assert.Equal(t, 3, config.MaxConcurrency)
	assert.Equal(t, DefaultConfig.Tokenizer, config.Tokenizer, "unset flags keep the loaded value")

	subcmd.Handler()
	assert.Equal(t, []Mode{ModeClean}, got)
}

func TestDefineFlags_RelativePaths(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)

	pdftest.Write(t, filepath.Join(dir, "docs", "a.pdf"), invoiceText)
	pdftest.Write(t, filepath.Join(dir, "docs", "target", "a_copy.pdf"), invoiceText)

	config := DefaultConfig
	var result *Result
	ctx := DefineFlags(&config, func(mode Mode) {
		var err error
		result, err = Run(context.Background(), &config, mode, &bytes.Buffer{})
		require.NoError(t, err)
	})

	subcmd, err := ctx.Parse([]string{"pdfdedup", "clean", "--root", "docs", "--target", "docs/target"})
	require.NoError(t, err)
	require.NotNil(t, subcmd)
	assert.Equal(t, "docs", config.Root, "root is used as typed")

	subcmd.Handler()
	require.NotNil(t, result)
	assert.Empty(t, result.Stopped)

	dup := filepath.Join("docs", "target", "a_copy.pdf")
	assert.Equal(t, []string{dup}, result.Selected)
	assert.Equal(t, 1, result.Deletions.Deleted)
	assert.False(t, fileExists(filepath.Join(dir, dup)))
	assert.True(t, fileExists(filepath.Join(dir, "docs", "a.pdf")))
}
