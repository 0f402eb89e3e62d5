// internal/appcore/core.go
//
// appcore owns the run lifecycle shared by pwsim and pwsim-audit: wire the
// evaluation pipeline into a writer goroutine, then map failures to exit
// codes (0 ok, 3 runtime error, 130 cancelled). Writers own formatting;
// tools own flag parsing and input loading.
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"pwsim/internal/pipeline"
	"pwsim/internal/runutil"
	"pwsim/internal/writers"
)

// Options carries the runtime knobs shared by the password-consuming tools.
type Options struct {
	Threads    int
	OnProgress func(done, total int)
}

// WriterFactory starts the output goroutine for row type T.
type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run evaluates every password and streams rows to the writer in input
// order. Broken pipes are a clean exit: downstream said "enough".
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	passwords []string,
	eval func(string) []T,
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	threads := runutil.EffectiveThreads(o.Threads)
	inCh, writeErr := wf.Start(outw, threads*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	perr := pipeline.ForEach(ctx, pipeline.Config{Threads: threads, OnProgress: o.OnProgress},
		passwords, eval,
		func(row T) error {
			select {
			case inCh <- row:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	return 0
}
