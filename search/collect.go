package search

import (
	"context"
	"strings"

	"github.com/abiiranathan/pdfdedup/logging"
	"golang.org/x/sync/errgroup"
)

// ExtractFunc returns the text of the file at path.
type ExtractFunc func(path string) (string, error)

type CollectOptions struct {
	// Max files extracted at a time. Values below 1 mean 1.
	Workers int

	Extract ExtractFunc
}

// CollectStats counts what happened to each discovered file.
type CollectStats struct {
	Total     int `json:"total" yaml:"total"`
	Extracted int `json:"extracted" yaml:"extracted"`
	Failed    int `json:"failed" yaml:"failed"`
	Empty     int `json:"empty" yaml:"empty"`
}

// CollectTexts extracts the text of every file. A file that fails to extract
// is logged and dropped, as is one without any text; neither stops the batch.
// Documents come back in the order of files regardless of Workers.
// The only error is the context's, when it is cancelled before all files are read.
func CollectTexts(ctx context.Context, files []string, opts CollectOptions) ([]Document, CollectStats, error) {
	stats := CollectStats{Total: len(files)}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	texts := make([]string, len(files))
	failed := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			logging.Log.Infof("(%d/%d) Extracting text from %s...", i+1, len(files), file)
			text, err := opts.Extract(file)
			if err != nil {
				logging.Log.WithField("path", file).WithError(err).Warn("ExtractionFailed: skipping file")
				failed[i] = true
				return nil
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, stats, err
	}

	docs := make([]Document, 0, len(files))
	for i, file := range files {
		switch {
		case failed[i]:
			stats.Failed++
		case strings.TrimSpace(texts[i]) == "":
			logging.Log.WithField("path", file).Info("No extractable text, skipping file")
			stats.Empty++
		default:
			stats.Extracted++
			docs = append(docs, Document{Path: file, Text: texts[i]})
		}
	}
	return docs, stats, nil
}
