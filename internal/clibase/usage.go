// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"pwsim/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage examples, dictionary blocks, etc.).
func UsageCommon(fs *flag.FlagSet, name, oneLiner string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – %s\n\n", name, oneLiner)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		// Tool-specific additions (usage examples, extra sections)
		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --passwords file        Password file(s) (repeatable) or '-' for STDIN [*]")
		fmt.Fprintln(out, "      --policy string         Policy config file (YAML/JSON/TOML); built-in default when omitted")

		fmt.Fprintln(out, "\nRun:")
		fmt.Fprintf(out, "  -n, --limit int             Evaluate only the first N passwords (0=all) [%s]\n", def("limit"))
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | csv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line (text/csv) [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Errors only on stderr [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
