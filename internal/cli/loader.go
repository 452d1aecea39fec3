package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/roach88/cutsheet/internal/assemble"
	"github.com/roach88/cutsheet/internal/standard"
)

// readLines reads the input line sequence. The path "-" reads from
// fallback (the command's stdin), so extraction output can be piped in.
func readLines(path string, fallback io.Reader) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = fallback
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	// Extracted lines can be long; the default token limit is too small
	// for wide sheets.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// parseInput runs the full reduction over one input file.
func parseInput(opts *RootOptions, path string, stdin io.Reader) (*standard.Document, error) {
	p, err := loadProfile(opts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading profile", err)
	}

	lines, err := readLines(path, stdin)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "reading input", err)
	}

	doc := assemble.Assemble(lines, p, assemble.UUIDv7Generator{})
	doc.Source = path
	return doc, nil
}
