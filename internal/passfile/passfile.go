// internal/passfile/passfile.go
package passfile

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"pwsim/internal/common"
)

// SourceUnavailableError marks a password source that could not be opened.
// A run cannot proceed without its input, so callers treat it as fatal.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("password source %s unavailable: %v", e.Path, e.Err)
}
func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// InvalidInputError identifies a row that cannot be treated as a password.
type InvalidInputError struct {
	Path string
	Row  int // 1-based line number
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s:%d: invalid input row (not valid UTF-8)", e.Path, e.Row)
}

// Read parses one password per line. Only a trailing CR is trimmed: unlike
// wordlists, surrounding spaces are part of the password. Empty lines are
// dropped, duplicates are dropped keeping the first occurrence, and case is
// preserved. A non-UTF-8 row aborts the whole read.
func Read(r io.Reader, name string) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	var out []string
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, &InvalidInputError{Path: name, Row: ln}
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return common.DedupePreserve(out), nil
}

// Load reads one password file. "-" reads stdin; a .gz suffix selects
// transparent decompression.
func Load(path string) ([]string, error) {
	if path == "-" {
		return Read(os.Stdin, "stdin")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()

	var r io.Reader = fh
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			return nil, &SourceUnavailableError{Path: path, Err: err}
		}
		defer func() { _ = gr.Close() }()
		r = gr
	}
	return Read(r, path)
}

// LoadAll concatenates several sources in order and de-duplicates across
// them, keeping the first occurrence.
func LoadAll(paths []string) ([]string, error) {
	var all []string
	for _, p := range paths {
		pw, err := Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, pw...)
	}
	return common.DedupePreserve(all), nil
}
