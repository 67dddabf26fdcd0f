package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abiiranathan/pdfdedup/alg"
	"github.com/abiiranathan/pdfdedup/cleanup"
	"github.com/abiiranathan/pdfdedup/logging"
	"github.com/abiiranathan/pdfdedup/pdf"
	"github.com/abiiranathan/pdfdedup/report"
	"github.com/abiiranathan/pdfdedup/search"
	"github.com/google/uuid"
)

// Mode selects how far a run goes.
type Mode int

const (
	// ModeScan reports similar pairs and never deletes.
	ModeScan Mode = iota

	// ModeClean deletes the duplicates found in the target folder.
	ModeClean
)

// Messages printed when a run stops because there is nothing to do.
const (
	MsgInsufficientData = "Not enough PDF files with extractable text."
	MsgNoPairs          = "No similar PDFs found."
	MsgNoTargets        = "No duplicate PDFs found in the target folder: %s"
)

// Result describes a completed run. Stopped is the message printed when the
// run ended early with nothing to do.
type Result struct {
	RunID     string
	Files     []string
	Stats     search.CollectStats
	Pairs     []search.SimilarPair
	Selected  []string
	Deletions cleanup.Summary
	Stopped   string
}

// Run executes one pass of the pipeline and writes the result lines to out.
// Errors are returned only for problems with the configuration or the root
// folder, before any file has been touched, and for a report that cannot be written.
func Run(ctx context.Context, config *Config, mode Mode, out io.Writer) (*Result, error) {
	tokenizer, err := alg.NewTokenizer(config.Tokenizer, config.StopWords)
	if err != nil {
		return nil, err
	}

	policy, err := cleanup.ParsePolicy(config.Policy)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(config.Root) == "" {
		return nil, errors.New("root folder is required")
	}

	if mode == ModeClean && strings.TrimSpace(config.Target) == "" {
		return nil, errors.New("target folder is required")
	}

	if config.Report != "" {
		if _, err := report.ReportFormat(config.Report); err != nil {
			return nil, err
		}
	}

	result := &Result{RunID: uuid.NewString()}
	log := logging.ForRun(result.RunID)

	result.Files, err = search.WalkDir(config.Root, []string{".pdf"}, config.SkipHidden)
	if err != nil {
		return nil, err
	}
	log.Infof("Found %d PDF files in %s", len(result.Files), config.Root)

	fmt.Fprintln(out, "Finding similar PDFs across all subfolders...")

	docs, stats, err := search.CollectTexts(ctx, result.Files, search.CollectOptions{
		Workers: config.MaxConcurrency,
		Extract: pdf.ExtractText,
	})
	result.Stats = stats
	if err != nil {
		return nil, err
	}
	log.WithField("failed", stats.Failed).WithField("empty", stats.Empty).
		Infof("Extracted text from %d of %d files", stats.Extracted, stats.Total)

	result.Pairs, err = search.FindSimilar(docs, config.Threshold, tokenizer)
	switch {
	case errors.Is(err, search.ErrInsufficientData):
		return result, finish(config, result, out, MsgInsufficientData)
	case err != nil:
		return nil, err
	case len(result.Pairs) == 0:
		return result, finish(config, result, out, MsgNoPairs)
	}

	for _, pair := range result.Pairs {
		fmt.Fprintln(out, pair)
	}

	if mode == ModeScan {
		return result, finish(config, result, out, "")
	}

	result.Selected = cleanup.FilterPaths(result.Pairs, config.Target, policy)
	if len(result.Selected) == 0 {
		return result, finish(config, result, out, fmt.Sprintf(MsgNoTargets, config.Target))
	}
	log.WithField("policy", policy).Infof("Selected %d files for deletion", len(result.Selected))

	fmt.Fprintln(out, "Deleting duplicate PDFs in the target folder...")
	result.Deletions = cleanup.DeleteFiles(result.Selected, cleanup.Options{
		DryRun: config.DryRun,
		Out:    out,
	})
	log.WithField("not_found", result.Deletions.NotFound).WithField("failed", result.Deletions.Failed).
		Infof("Deleted %d files", result.Deletions.Deleted)

	fmt.Fprintln(out, "Process completed.")
	return result, finish(config, result, out, "")
}

// finish prints the stop message, if any, and writes the report.
func finish(config *Config, result *Result, out io.Writer, stopped string) error {
	if stopped != "" {
		result.Stopped = stopped
		fmt.Fprintln(out, stopped)
	}

	if config.Report == "" {
		return nil
	}

	record := &report.Report{
		RunID:     result.RunID,
		CreatedAt: time.Now().UTC(),
		Root:      config.Root,
		Target:    config.Target,
		Threshold: config.Threshold,
		DryRun:    config.DryRun,
		Stats:     result.Stats,
		Pairs:     result.Pairs,
		Deletions: deletionEntries(result.Deletions),
		Stopped:   result.Stopped,
	}
	if record.Pairs == nil {
		record.Pairs = []search.SimilarPair{}
	}

	if err := record.Serialize(config.Report); err != nil {
		return err
	}
	logging.ForRun(result.RunID).Infof("Report written to %s", config.Report)
	return nil
}

// deletionEntries converts deletion results for the report.
func deletionEntries(summary cleanup.Summary) []report.DeletionEntry {
	entries := make([]report.DeletionEntry, len(summary.Results))
	for i, r := range summary.Results {
		entries[i] = report.DeletionEntry{Path: r.Path, Outcome: r.Outcome.String()}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
		}
	}
	return entries
}
