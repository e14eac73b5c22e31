package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/parqetimport"
	"github.com/etnz/parqetimport/logger"
	"github.com/etnz/parqetimport/renderer"
	"github.com/google/subcommands"
)

// ConvertCmd converts a Binance export into a Parqet import file.
type ConvertCmd struct {
	summary bool
	verbose bool
	logJSON bool

	stdout io.Writer
	stderr io.Writer
}

// NewConvertCmd returns the command writing to the process standard streams.
func NewConvertCmd() *ConvertCmd {
	return &ConvertCmd{stdout: os.Stdout, stderr: os.Stderr}
}

func (*ConvertCmd) Name() string { return "convert" }
func (*ConvertCmd) Synopsis() string {
	return "converts a Binance trade history into a Parqet import file"
}
func (*ConvertCmd) Usage() string {
	return `binance2parqet [-summary] [-v] [-log-json] <orders.csv|orders.xlsx>

  Reads Binance's order history export and writes it to stdout in the Bitpanda
  CSV format that Parqet imports.
  Only filled orders are converted. Stablecoin and fiat trades, and trades paid
  in a currency Parqet cannot read, are skipped with a diagnostic on stderr.

Usage Examples:
$ binance2parqet orders.csv > parqet.csv
$ binance2parqet -summary orders.xlsx > parqet.csv

`
}

func (c *ConvertCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summary, "summary", envBool(EnvSummary), "Print a summary of the conversion to stderr. Defaults to $"+EnvSummary)
	f.BoolVar(&c.verbose, "v", envBool(EnvVerbose), "Log debug diagnostics. Defaults to $"+EnvVerbose)
	f.BoolVar(&c.logJSON, "log-json", envBool(EnvLogJSON), "Log diagnostics as JSON lines. Defaults to $"+EnvLogJSON)
}

func (c *ConvertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(c.stderr, "No input path specified")
		return subcommands.ExitFailure
	}
	path, err := filepath.Abs(f.Arg(0))
	if err != nil {
		fmt.Fprintf(c.stderr, "Error resolving %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	log := logger.New(c.stderr, logger.Options{Verbose: c.verbose, JSON: c.logJSON})
	log.Debug().Str("path", path).Msg("reading export")

	records, err := parqetimport.ReadRecords(path)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error reading export: %v\n", err)
		return subcommands.ExitFailure
	}

	conv, err := parqetimport.NewConverter(log).Convert(records)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error converting %s: %v\n", filepath.Base(path), err)
		return subcommands.ExitFailure
	}

	if err := parqetimport.Encode(c.stdout, conv.Rows); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.summary {
		s := parqetimport.NewSummary(conv)
		printMarkdown(c.stderr, renderer.SummaryMarkdown(filepath.Base(path), s))
	}
	return subcommands.ExitSuccess
}
