// internal/reportcli/options.go
package reportcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"pwsim/internal/clibase"
	"pwsim/internal/cliutil"
	"pwsim/internal/version"
)

// Options holds all pwsim-report flags and arguments. The report tool reads
// simulation CSV and writes a standalone HTML page, so it shares none of the
// password-run flags.
type Options struct {
	Input string // results CSV, '-' for STDIN
	Out   string // HTML path, '-' for STDOUT
	Title string

	Quiet   bool
	Verbose bool
	Version bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}
		fmt.Fprintf(out, "%s – HTML report from simulation CSV\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] results.csv\n", name)
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input file            Simulation CSV (pwsim --output csv) or '-' for STDIN [*]")
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -O, --out file              HTML output path or '-' for STDOUT [%s]\n", def("out"))
		fmt.Fprintf(out, "      --title string          Report title [%s]\n", def("title"))
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Errors only on stderr [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pwsim-report"), nil) }

// PrintExamples prints a tiny, focused quickstart for pwsim-report.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pwsim-report", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Turn simulation CSV into charts: cracked fractions per horizon,")
		_, _ = fmt.Fprintln(w, "plus an independent zxcvbn score histogram.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  pwsim --output csv passwords.txt | pwsim-report - -O report.html")
		_, _ = fmt.Fprintln(w, "  pwsim-report results.csv")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	fs.StringVar(&o.Input, "input", "", "simulation CSV or '-'")
	fs.StringVar(&o.Input, "i", "", "alias of --input")
	fs.StringVar(&o.Out, "out", "pwsim-report.html", "HTML output path or '-' [pwsim-report.html]")
	fs.StringVar(&o.Out, "O", "pwsim-report.html", "alias of --out")
	fs.StringVar(&o.Title, "title", "Password crack-time report", "report title")

	fs.BoolVar(&o.Quiet, "quiet", false, "errors only on stderr [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Verbose, "verbose", false, "debug logging on stderr [false]")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
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
	if o.Version {
		return o, nil
	}

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		if o.Input == "" && len(exp) == 1 {
			o.Input = exp[0]
		} else if o.Input != "" {
			return o, errors.New("input CSV given both via --input and positionally")
		} else {
			return o, errors.New("exactly one input CSV is expected")
		}
	}
	if o.Input == "" {
		return o, errors.New("provide a results CSV via --input or a positional argument")
	}
	if o.Out == "" {
		return o, errors.New("--out must not be empty")
	}
	return o, nil
}
