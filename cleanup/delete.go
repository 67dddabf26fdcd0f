package cleanup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/abiiranathan/pdfdedup/logging"
)

// ErrDeletionFailed wraps the cause of a file that exists but could not be removed.
var ErrDeletionFailed = errors.New("deletion failed")

// DeletionError matches both ErrDeletionFailed and its cause with errors.Is.
type DeletionError struct {
	Path string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrDeletionFailed, e.Path, e.Err)
}

func (e *DeletionError) Unwrap() []error {
	return []error{ErrDeletionFailed, e.Err}
}

// Outcome is what happened to one deletion candidate.
type Outcome int

const (
	Deleted Outcome = iota
	NotFound
	Failed
	Skipped // dry run
)

func (o Outcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case NotFound:
		return "not found"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the outcome of one deletion attempt. Err is set only for Failed.
type Result struct {
	Path    string
	Outcome Outcome
	Err     error
}

// String is the line printed for the attempt.
func (r Result) String() string {
	switch r.Outcome {
	case Deleted:
		return "Deleted: " + r.Path
	case NotFound:
		return "File not found: " + r.Path
	case Skipped:
		return "Would delete: " + r.Path
	}
	cause := r.Err
	var de *DeletionError
	if errors.As(cause, &de) {
		cause = de.Err
	}
	return fmt.Sprintf("Error deleting %s: %v", r.Path, cause)
}

// Summary holds every Result in attempt order plus per-outcome counts.
type Summary struct {
	Results  []Result
	Deleted  int
	NotFound int
	Failed   int
	Skipped  int
}

type Options struct {
	// Report what would be deleted without touching the filesystem.
	DryRun bool

	// Each result line is written here as soon as it is known. Optional.
	Out io.Writer

	// Defaults to os.Remove.
	Remove func(path string) error
}

// DeleteFiles attempts every path in order. Failures are recorded and never
// stop the remaining attempts. A path listed twice is attempted twice; the
// second attempt normally ends as NotFound, in a dry run too.
func DeleteFiles(paths []string, opts Options) Summary {
	remove := opts.Remove
	if remove == nil {
		remove = os.Remove
	}

	var summary Summary
	planned := make(map[string]bool)

	for _, path := range paths {
		var result Result
		if opts.DryRun {
			result = plan(path, planned)
		} else {
			result = deleteFile(path, remove)
		}

		switch result.Outcome {
		case Deleted:
			summary.Deleted++
		case NotFound:
			summary.NotFound++
		case Failed:
			summary.Failed++
			logging.Log.WithField("path", path).WithError(result.Err).Warn("unable to delete file")
		case Skipped:
			summary.Skipped++
		}
		summary.Results = append(summary.Results, result)

		if opts.Out != nil {
			fmt.Fprintln(opts.Out, result)
		}
	}
	return summary
}

func deleteFile(path string, remove func(string) error) Result {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Path: path, Outcome: NotFound}
		}
		return Result{Path: path, Outcome: Failed, Err: &DeletionError{Path: path, Err: err}}
	}

	if err := remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Path: path, Outcome: NotFound}
		}
		return Result{Path: path, Outcome: Failed, Err: &DeletionError{Path: path, Err: err}}
	}
	return Result{Path: path, Outcome: Deleted}
}

func plan(path string, planned map[string]bool) Result {
	if planned[path] {
		return Result{Path: path, Outcome: NotFound}
	}
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Path: path, Outcome: NotFound}
		}
		return Result{Path: path, Outcome: Failed, Err: &DeletionError{Path: path, Err: err}}
	}
	planned[path] = true
	return Result{Path: path, Outcome: Skipped}
}
