package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/abiiranathan/pdfdedup/cli"
	"github.com/abiiranathan/pdfdedup/logging"
)

func runner(config *cli.Config) func(mode cli.Mode) {
	return func(mode cli.Mode) {
		logging.Init(config.Verbose, os.Stderr)

		// Ctrl-C stops extraction; deletion is never interrupted half-way.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if _, err := cli.Run(ctx, config, mode, os.Stdout); err != nil {
			stop()
			log.Fatalln(err)
		}
	}
}

func main() {
	log.SetPrefix("[pdfdedup]: ")
	log.SetFlags(log.Lshortfile)

	// Defaults, .env, config file and environment. Flags override these.
	config, err := cli.LoadConfig()
	if err != nil {
		log.Fatalln(err)
	}

	// Parse the command line arguments
	ctx := cli.DefineFlags(config, runner(config))
	subcmd, err := ctx.Parse(os.Args)
	if err != nil {
		log.Fatalln(err)
	}

	// If the subcommand is nil, print the usage and exit
	if subcmd == nil {
		ctx.PrintUsage(os.Stdout)
		os.Exit(1)
	}

	// Run the subcommand
	subcmd.Handler()
}
