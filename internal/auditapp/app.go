// internal/auditapp/app.go
package auditapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"

	"pwsim-core/policy"
	"pwsim/internal/appcore"
	"pwsim/internal/auditcli"
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

	fs := auditcli.NewFlagSet("pwsim-audit")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = auditcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(0)
	}

	opts, err := auditcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			auditcli.PrintExamples(outw)
			return flushExit(0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pwsim-audit version %s\n", version.Version)
		return flushExit(0)
	}

	log := logx.New(stderr, opts.Quiet, opts.Verbose).With().
		Str("component", "pwsim-audit").
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
	pe := policy.New(polCfg)

	eval := func(pwd string) []policy.Result { return []policy.Result{pe.Check(pwd)} }
	o := appcore.Options{Threads: opts.Threads}
	wf := appcore.NewAuditWriterFactory(opts.Output, opts.Header)
	return appcore.Run[policy.Result](parent, stdout, stderr, o, passwords, eval, wf)
}
