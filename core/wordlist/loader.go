// core/wordlist/loader.go
package wordlist

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read consumes one word per line: surrounding whitespace is trimmed, blank
// lines and '#' comments are skipped. Order and case are preserved, and
// duplicates are kept; they count against the mangle budget like the source
// file says they do.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	var words []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Load reads a wordlist from path. "-" reads stdin; gzip input is detected
// by the magic bytes or a .gz suffix and decompressed transparently.
func Load(path string) ([]string, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		defer func() { _ = gr.Close() }()
		return Read(gr)
	}
	return Read(fh)
}
