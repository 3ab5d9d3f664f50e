/*
Command xsampa transcribes a list of Arabic words into X-SAMPA.

Usage:

	xsampa [-config file.yaml] <input> <output>

Input holds one word per line; "-" reads from stdin. For every word a line
"word<TAB>transcription" is written to output; "-" writes to stdout.
Settings are taken from the YAML file (flag -config or XSAMPA_CONFIG) and
XSAMPA_* environment variables:

	XSAMPA_LEXICON        tab-separated exception lexicon
	XSAMPA_ON_MALFORMED   skip | abort   (default skip)
	XSAMPA_NFC            normalize words to Unicode NFC
	XSAMPA_SPLIT_FIELDS   several whitespace-separated words per line
	XSAMPA_TRACE_LEVEL    error | info | debug
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/xsampa"
	"github.com/npillmayer/xsampa/batch"
	"github.com/npillmayer/xsampa/tsvexceptions"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "xsampa: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("xsampa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", os.Getenv("XSAMPA_CONFIG"), "path to YAML configuration")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: xsampa [-config file.yaml] <input> <output>")
		fmt.Fprintln(stderr, `  Transcribes one Arabic word per line into X-SAMPA ("-" = stdin/stdout).`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errors.New("expected exactly two arguments: <input> <output>")
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	for _, key := range []string{"xsampa", "xsampa.batch"} {
		tracing.Select(key).SetTraceLevel(level)
	}

	tr := xsampa.NewTranscriber(xsampa.StandardTables())
	if cfg.Lexicon != "" {
		if err := loadLexicon(tr, cfg.Lexicon); err != nil {
			return err
		}
	}

	in, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := createOutput(fs.Arg(1), stdout)
	if err != nil {
		return err
	}

	stats, err := batch.Run(tr, in, out, cfg.Options())
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close %s: %w", fs.Arg(1), cerr)
	}
	fmt.Fprintf(stderr, "transcribed %d words from %d lines (%d skipped)\n",
		stats.Words, stats.Lines, stats.Skipped)
	return err
}

func loadLexicon(tr *xsampa.Transcriber, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	if err := tsvexceptions.LoadExceptions(tr, f); err != nil {
		return fmt.Errorf("load lexicon %s: %w", path, err)
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func createOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}
