package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Line is one non-blank input line with its 1-based position in the source.
type Line struct {
	No   int
	Text string
}

// ReadLines reads a PA2 source into lines. PA2 files are Latin-1 on the
// wire, so bytes are transcoded through ISO 8859-1 before splitting; stray
// high bytes therefore never produce invalid UTF-8. Trailing carriage
// returns are stripped and blank lines are skipped, but line numbers count
// every physical line.
func ReadLines(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []Line
	no := 0
	for scanner.Scan() {
		no++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, Line{No: no, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// OpenInput opens path for reading, with "-" meaning stdin. The caller must
// close the returned reader.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}
