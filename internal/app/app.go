// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"pwsim-core/engine"
	"pwsim-core/policy"
	"pwsim-core/wordlist"
	"pwsim/internal/appcore"
	"pwsim/internal/cli"
	"pwsim/internal/clibase"
	"pwsim/internal/config"
	"pwsim/internal/logx"
	"pwsim/internal/passfile"
	"pwsim/internal/runutil"
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

	fs := cli.NewFlagSet("pwsim")
	fs.SetOutput(io.Discard) // silence default flag pkg

	// No args => register flags then print usage
	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return flushExit(0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pwsim version %s\n", version.Version)
		return flushExit(0)
	}

	log := logx.New(stderr, opts.Quiet, opts.Verbose).With().
		Str("component", "pwsim").
		Str("run_id", uuid.NewString()).
		Logger()

	passwords, err := passfile.LoadAll(opts.PassFiles)
	if err != nil {
		log.Error().Err(err).Msg("cannot load passwords")
		return 3
	}
	passwords = runutil.Truncate(passwords, opts.Limit)
	log.Debug().Int("passwords", len(passwords)).Msg("input loaded")

	polCfg, warns, err := config.LoadPolicy(opts.PolicyFile)
	if err != nil {
		log.Error().Err(err).Msg("bad policy config")
		return 2
	}
	for _, w := range warns {
		log.Warn().Msg(w)
	}

	var matcher *wordlist.Matcher
	if opts.Wordlist != "" {
		words, werr := wordlist.Load(opts.Wordlist)
		if werr != nil {
			log.Warn().Err(werr).
				Msg("wordlist unavailable; dictionary model falls back to the weak-password heuristic")
		} else {
			matcher = wordlist.NewMatcher(words, opts.MangleLimit)
			log.Debug().
				Int("words", matcher.Words()).
				Int("mangle_limit", opts.MangleLimit).
				Msg("wordlist indexed")
		}
	} else {
		log.Debug().Msg("no wordlist given; dictionary model uses the weak-password heuristic")
	}

	eng := engine.New(engine.Config{
		Policy:   policy.New(polCfg),
		Matcher:  matcher,
		TopSlice: opts.TopSlice,
	})

	o := appcore.Options{Threads: opts.Threads}
	if bar := newProgress(stderr, len(passwords), opts.Quiet || opts.NoProgress); bar != nil {
		o.OnProgress = func(done, total int) { _ = bar.Add(1) }
		defer func() { _ = bar.Finish() }()
	}

	wf := appcore.NewRecordWriterFactory(opts.Output, opts.Header, opts.Pretty)
	return appcore.Run[engine.Record](parent, stdout, stderr, o, passwords, eng.Evaluate, wf)
}

// newProgress returns a stderr progress bar, or nil when suppressed or when
// stderr is not a terminal (tests, pipes, cron).
func newProgress(stderr io.Writer, total int, suppressed bool) *progressbar.ProgressBar {
	if suppressed || total == 0 {
		return nil
	}
	f, ok := stderr.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionSetWidth(25),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)
}
