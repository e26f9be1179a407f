package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"wordkit/convert"
	"wordkit/observability"
)

type options struct {
	input   string
	outDir  string
	timeout time.Duration
	verbose bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "docx2pdf: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "docx2pdf: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/docx2pdf [flags] <docx>\n")
		flag.PrintDefaults()
	}
	outDir := flag.String("out", "", "Directory for the PDF (default: next to the input)")
	timeout := flag.Duration("timeout", convert.DefaultTimeout, "Per-attempt conversion timeout")
	verbose := flag.Bool("v", false, "Log every conversion attempt")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return opts, fmt.Errorf("expected exactly one input file, got %d", flag.NArg())
	}
	opts.input = flag.Arg(0)
	opts.outDir = *outDir
	opts.timeout = *timeout
	opts.verbose = *verbose
	return opts, nil
}

func run(opts options) error {
	log := observability.Stderr()
	if opts.verbose {
		log.MinLvl = observability.LevelDebug
	}

	res, err := convert.Run(context.Background(), opts.input, convert.Options{
		Candidates: convert.DefaultCandidates(),
		Timeout:    opts.timeout,
		OutDir:     opts.outDir,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	if res.State == convert.StateSucceeded {
		fmt.Printf("Wrote %s (via %s)\n", res.Output, res.Candidate)
	}
	return nil
}
