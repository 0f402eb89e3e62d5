// internal/reportapp/app.go
package reportapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"pwsim/internal/clibase"
	"pwsim/internal/logx"
	"pwsim/internal/report"
	"pwsim/internal/reportcli"
	"pwsim/internal/strength"
	"pwsim/internal/version"
	"pwsim/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	flushExit := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	fs := reportcli.NewFlagSet("pwsim-report")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = reportcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(0)
	}

	opts, err := reportcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			reportcli.PrintExamples(outw)
			return flushExit(0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pwsim-report version %s\n", version.Version)
		return flushExit(0)
	}

	log := logx.New(stderr, opts.Quiet, opts.Verbose).With().
		Str("component", "pwsim-report").
		Str("run_id", uuid.NewString()).
		Logger()

	in := io.Reader(os.Stdin)
	if opts.Input != "-" {
		fh, err := os.Open(opts.Input)
		if err != nil {
			log.Error().Err(err).Msg("cannot open results CSV")
			return 3
		}
		defer fh.Close()
		in = fh
	}

	records, err := report.LoadCSV(bufio.NewReader(in))
	if err != nil {
		log.Error().Err(err).Str("input", opts.Input).Msg("cannot parse results CSV")
		return 3
	}
	if len(records) == 0 {
		log.Error().Str("input", opts.Input).Msg("results CSV holds no records")
		return 3
	}

	series := report.CrackedFractions(records)
	dist := report.ScoreDistribution(records, strength.Score)
	log.Debug().
		Int("records", len(records)).
		Int("attackers", len(series)).
		Msg("summaries computed")

	if opts.Out == "-" {
		if err := report.RenderHTML(outw, opts.Title, series, dist); err != nil {
			log.Error().Err(err).Msg("cannot render report")
			return 3
		}
		return flushExit(0)
	}

	fh, err := os.Create(opts.Out)
	if err != nil {
		log.Error().Err(err).Msg("cannot create report file")
		return 3
	}
	w := bufio.NewWriter(fh)
	if err := report.RenderHTML(w, opts.Title, series, dist); err != nil {
		fh.Close()
		log.Error().Err(err).Msg("cannot render report")
		return 3
	}
	if err := w.Flush(); err != nil {
		fh.Close()
		log.Error().Err(err).Msg("cannot write report file")
		return 3
	}
	if err := fh.Close(); err != nil {
		log.Error().Err(err).Msg("cannot write report file")
		return 3
	}

	log.Info().
		Str("out", opts.Out).
		Int("records", len(records)).
		Int("attackers", len(series)).
		Msg("report written")
	return flushExit(0)
}
