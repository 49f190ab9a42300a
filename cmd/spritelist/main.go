package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/danmuck/spritelist/internal/listing"
	"github.com/danmuck/spritelist/internal/logging"
	"github.com/danmuck/spritelist/internal/observability"
	"github.com/danmuck/spritelist/internal/report"
	"github.com/rs/zerolog/log"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	stdio = "-"
)

func main() {
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: spritelist [options] [input [output]]")
	fmt.Fprintf(w, "  input defaults to %s, output to %s; %q selects stdin/stdout\n", defaultInput, defaultOutput, stdio)
	fs.PrintDefaults()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spritelist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	check := fs.Bool("check", false, "verify an existing listing against the input instead of writing one")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this file after the run")
	quiet := fs.Bool("quiet", false, "suppress the summary")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 2 {
		usage(fs, stderr)
		return exitUsage
	}

	cfg := defaultToolConfig()
	if *configPath != "" {
		loaded, err := loadToolConfig(*configPath)
		if err != nil {
			log.Error().Err(err).Str("path", *configPath).Msg("config")
			return exitError
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		case "quiet":
			cfg.Quiet = *quiet
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		cfg.Output = fs.Arg(1)
	}

	if *check && cfg.Input == stdio && cfg.Output == stdio {
		fmt.Fprintln(stderr, "spritelist: -check cannot read both input and listing from stdin")
		return exitUsage
	}

	start := time.Now()
	action, verb := "convert", "converted"
	var res listing.Result
	var err error
	if *check {
		action, verb = "check", "checked"
		res, err = checkListing(cfg.Input, cfg.Output, stdin)
	} else {
		res, err = convert(cfg.Input, cfg.Output, stdin, stdout)
	}
	observability.RecordConversion(observability.SourceCLI, res.Bytes, res.Records, time.Since(start), err == nil)
	writeMetrics(cfg.MetricsFile)

	if err != nil {
		log.Error().Err(err).Str("input", cfg.Input).Str("output", cfg.Output).Msg(action + " failed")
		if !cfg.Quiet {
			fmt.Fprintln(stderr, report.Failure(err))
		}
		return exitError
	}

	log.Debug().
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Int("bytes", res.Bytes).
		Int("records", res.Records).
		Msg(verb)
	if !cfg.Quiet {
		fmt.Fprintln(stderr, report.Summary(verb, cfg.Input, cfg.Output, res))
	}
	return exitOK
}

func convert(input, output string, stdin io.Reader, stdout io.Writer) (listing.Result, error) {
	switch {
	case input != stdio && output != stdio:
		return listing.ConvertFile(input, output)
	case output == stdio:
		data, err := readInput(input, stdin)
		if err != nil {
			return listing.Result{}, err
		}
		if err := listing.Write(stdout, data); err != nil {
			return listing.Result{}, &listing.FileAccessError{Op: "write", Path: stdio, Err: err}
		}
		return listing.ResultFor(data), nil
	default:
		data, err := readInput(input, stdin)
		if err != nil {
			return listing.Result{}, err
		}
		return listing.WriteFile(output, data)
	}
}

func checkListing(input, output string, stdin io.Reader) (listing.Result, error) {
	data, err := readInput(input, stdin)
	if err != nil {
		return listing.Result{}, err
	}
	text, err := readInput(output, stdin)
	if err != nil {
		return listing.Result{}, err
	}
	if err := listing.Verify(data, text); err != nil {
		return listing.Result{}, err
	}
	return listing.ResultFor(data), nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == stdio {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &listing.FileAccessError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

func writeMetrics(path string) {
	if path == "" {
		return
	}
	if err := observability.WriteTextfile(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("metrics textfile not written")
	}
}
