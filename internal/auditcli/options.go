// internal/auditcli/options.go
package auditcli

import (
	"flag"
	"fmt"
	"io"

	"pwsim/internal/clibase"
	"pwsim/internal/cliutil"
)

// Options holds all pwsim-audit flags and arguments. The audit tool needs
// nothing beyond the shared set: it checks composition, not crack times.
type Options struct {
	clibase.Common
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "password policy auditor", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] passwords.txt\n", name)
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pwsim-audit"), nil) }

// PrintExamples prints a tiny, focused quickstart for pwsim-audit.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pwsim-audit", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Check a password list against a composition policy, rule by rule.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  pwsim-audit passwords.txt")
		_, _ = fmt.Fprintln(w, "  pwsim-audit --policy policy.yaml --output csv passwords.txt")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(fs, &c, noHeader, posArgs); err != nil {
		return o, err
	}

	o.Common = c
	return o, nil
}
