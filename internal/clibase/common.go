// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"pwsim/internal/cliutil"
)

// Common holds CLI fields shared by pwsim and pwsim-audit.
type Common struct {
	// Input
	PassFiles  []string
	PolicyFile string

	// Run
	Limit   int
	Threads int

	// Output
	Output string // text|csv|json|jsonl
	Header bool

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --passwords/-i)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs and returns a pointer to the "no-header"
// bool that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Input
	passVal := &sliceValue{dst: &c.PassFiles}
	fs.Var(passVal, "passwords", "password file(s) (repeatable) or '-'")
	fs.Var(passVal, "i", "alias of --passwords")
	fs.StringVar(&c.PolicyFile, "policy", "", "policy config file (YAML/JSON/TOML)")

	// Run
	fs.IntVar(&c.Limit, "limit", 0, "evaluate only the first N passwords (0=all) [0]")
	fs.IntVar(&c.Limit, "n", 0, "alias of --limit")
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | csv | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line (text/csv) [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "errors only on stderr [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging on stderr [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header and folds positionals into PassFiles, then runs
// shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.PassFiles = append(c.PassFiles, exp...)
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if len(c.PassFiles) == 0 {
		return errors.New("provide a password file via --passwords or a positional argument")
	}
	stdin := 0
	for _, p := range c.PassFiles {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' may be given at most once")
	}
	if c.Limit < 0 {
		return errors.New("--limit must be ≥ 0")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.Output {
	case "text", "csv", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}
