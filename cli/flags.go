package cli

import (
	"log"
	"os"

	"github.com/abiiranathan/goflag"
)

// DefineFlags registers the subcommands. Each writes its flags into config and
// calls run with the mode it selects.
func DefineFlags(config *Config, run func(mode Mode)) *goflag.Context {
	// Flags required by multiple subcomands.
	// root stays as typed so that discovered paths and the target are
	// spelled the same way for the prefix match.
	rootFlag := goflag.Flag{
		FlagType:  goflag.FlagString,
		Name:      "root",
		ShortName: "r",
		Value:     &config.Root,
		Usage:     "The parent folder searched recursively for PDFs",
		Required:  false,
		Validator: nil,
	}

	thresholdFlag := goflag.Flag{
		FlagType:  goflag.FlagFloat64,
		Name:      "threshold",
		ShortName: "s",
		Value:     &config.Threshold,
		Usage:     "Minimum similarity (0..1) for two PDFs to count as duplicates",
		Required:  false,
		Validator: nil,
	}

	tokenizerFlag := goflag.Flag{
		FlagType:  goflag.FlagString,
		Name:      "tokenizer",
		ShortName: "k",
		Value:     &config.Tokenizer,
		Usage:     "How text is split into terms: word (default) or prose",
		Required:  false,
		Validator: nil,
	}

	stopWordsFlag := goflag.Flag{
		FlagType:  goflag.FlagString,
		Name:      "stopwords",
		ShortName: "w",
		Value:     &config.StopWords,
		Usage:     "Remove stop words of this language (e.g. en) before comparing",
		Required:  false,
		Validator: nil,
	}

	skipHiddenFlag := goflag.Flag{
		FlagType:  goflag.FlagBool,
		Name:      "skip-hidden",
		ShortName: "H",
		Value:     &config.SkipHidden,
		Usage:     "Ignore files and folders whose name starts with a dot",
		Required:  false,
		Validator: nil,
	}

	reportFlag := goflag.Flag{
		FlagType:  goflag.FlagString,
		Name:      "report",
		ShortName: "o",
		Value:     &config.Report,
		Usage:     "Write a run report to this .json, .yaml or .yml file",
		Required:  false,
		Validator: nil,
	}

	targetFlag := goflag.Flag{
		FlagType:  goflag.FlagString,
		Name:      "target",
		ShortName: "t",
		Value:     &config.Target,
		Usage:     "The folder whose duplicates are deleted",
		Required:  false,
		Validator: nil,
	}

	policyFlag := goflag.Flag{
		FlagType:  goflag.FlagString,
		Name:      "policy",
		ShortName: "p",
		Value:     &config.Policy,
		Usage:     "first: delete the first in-target file of each pair; cluster: keep one file per group of duplicates",
		Required:  false,
		Validator: nil,
	}

	dryRunFlag := goflag.Flag{
		FlagType:  goflag.FlagBool,
		Name:      "dry-run",
		ShortName: "n",
		Value:     &config.DryRun,
		Usage:     "Print what would be deleted without deleting anything",
		Required:  false,
		Validator: nil,
	}

	// Create flag context.
	ctx := goflag.NewContext()

	// global flags
	ctx.AddFlag(goflag.FlagInt, "concurrency", "c",
		&config.MaxConcurrency,
		"No of PDF files whose text is extracted at once",
		false, goflag.Min(1), goflag.Max(100))

	ctx.AddFlag(goflag.FlagBool, "verbose", "v",
		&config.Verbose,
		"Log debug output with timestamps",
		false)

	// register subcommands
	ctx.AddSubCommand("scan", "Report similar PDFs under a folder without deleting", func() {
		run(ModeScan)
	}).AddFlagPtr(&rootFlag).
		AddFlagPtr(&thresholdFlag).
		AddFlagPtr(&tokenizerFlag).
		AddFlagPtr(&stopWordsFlag).
		AddFlagPtr(&skipHiddenFlag).
		AddFlagPtr(&reportFlag)

	ctx.AddSubCommand("clean", "Delete PDFs in the target folder that duplicate another PDF", func() {
		run(ModeClean)
	}).AddFlagPtr(&rootFlag).
		AddFlagPtr(&targetFlag).
		AddFlagPtr(&thresholdFlag).
		AddFlagPtr(&tokenizerFlag).
		AddFlagPtr(&stopWordsFlag).
		AddFlagPtr(&skipHiddenFlag).
		AddFlagPtr(&policyFlag).
		AddFlagPtr(&dryRunFlag).
		AddFlagPtr(&reportFlag)

	ctx.AddSubCommand("prompt", "Ask for the folders and threshold, then clean", func() {
		if err := Prompt(config, os.Stdin, os.Stdout); err != nil {
			log.Fatalln(err)
		}
		run(ModeClean)
	}).AddFlagPtr(&tokenizerFlag).
		AddFlagPtr(&stopWordsFlag).
		AddFlagPtr(&skipHiddenFlag).
		AddFlagPtr(&policyFlag).
		AddFlagPtr(&dryRunFlag).
		AddFlagPtr(&reportFlag)

	return ctx
}
