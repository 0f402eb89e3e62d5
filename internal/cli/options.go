// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"pwsim/internal/clibase"
	"pwsim/internal/cliutil"
)

// Options holds all pwsim flags and arguments.
type Options struct {
	clibase.Common

	// Dictionary model
	Wordlist    string
	MangleLimit int
	TopSlice    int

	// Output extras
	Pretty     bool
	NoProgress bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "password crack-time simulator", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] passwords.txt\n", name)

		_, _ = fmt.Fprintln(out, "\nDictionary model:")
		_, _ = fmt.Fprintln(out, "  -w, --wordlist string       Wordlist file (plain or .gz) or '-' for STDIN")
		_, _ = fmt.Fprintf(out, "      --mangle-limit int      Base words expanded into mangled variants [%s]\n", def("mangle-limit"))
		_, _ = fmt.Fprintf(out, "      --top-slice int         Common-word shortlist size for the casual attacker [%s]\n", def("top-slice"))

		_, _ = fmt.Fprintln(out, "\nOutput extras:")
		_, _ = fmt.Fprintf(out, "      --pretty                Append a human-readable block per record (text) [%s]\n", def("pretty"))
		_, _ = fmt.Fprintf(out, "      --no-progress           Disable the progress bar [%s]\n", def("no-progress"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pwsim"), nil) }

// PrintExamples prints a tiny, focused quickstart for pwsim.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pwsim", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Estimate crack times for a password list against three attacker tiers.")
		_, _ = fmt.Fprintln(w, "Add a wordlist with --wordlist to model dictionary attacks.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  pwsim passwords.txt")
		_, _ = fmt.Fprintln(w, "  pwsim --wordlist rockyou.txt.gz --output csv passwords.txt > results.csv")
		_, _ = fmt.Fprintln(w, "  cat passwords.txt | pwsim --output json -")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	// Shared flags via clibase
	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	// Dictionary model flags
	fs.StringVar(&o.Wordlist, "wordlist", "", "wordlist file or '-'")
	fs.StringVar(&o.Wordlist, "w", "", "alias of --wordlist")
	fs.IntVar(&o.MangleLimit, "mangle-limit", 2000, "base words expanded into mangled variants [2000]")
	fs.IntVar(&o.TopSlice, "top-slice", 200, "common-word shortlist size for the casual attacker [200]")

	// Output extras
	fs.BoolVar(&o.Pretty, "pretty", false, "append a human-readable block per record (text) [false]")
	fs.BoolVar(&o.NoProgress, "no-progress", false, "disable the progress bar [false]")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	// Split & parse
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

	// Finalize header, expand pos, shared validation
	if err := clibase.AfterParse(fs, &c, noHeader, posArgs); err != nil {
		return o, err
	}
	// Tool-specific validation
	if o.MangleLimit < 0 {
		return o, errors.New("--mangle-limit must be ≥ 0")
	}
	if o.TopSlice < 0 {
		return o, errors.New("--top-slice must be ≥ 0")
	}
	if o.Wordlist == "-" {
		for _, p := range c.PassFiles {
			if p == "-" {
				return o, errors.New("--wordlist and --passwords cannot both read STDIN")
			}
		}
	}

	// Embed shared options
	o.Common = c
	return o, nil
}
