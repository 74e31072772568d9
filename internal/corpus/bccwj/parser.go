// Package bccwj parses BCCWJ short-unit-word frequency TSV extracts into
// corpus entries. Pure function: reader in, entries out.
package bccwj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hikarukin/waniwords/internal/corpus"
)

// Parse reads a BCCWJ suw frequency TSV. Field layout per row: rank(0),
// reading(1), lemma(2), word type(3), remaining columns ignored. Rows with
// fewer than four fields are skipped.
func Parse(r io.Reader) ([]corpus.Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []corpus.Entry
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), "\t", 5)
		if len(fields) < 4 {
			continue
		}

		entries = append(entries, corpus.Entry{
			Reading: strings.TrimSpace(fields[1]),
			Lemma:   strings.TrimSpace(fields[2]),
			Type:    strings.TrimSpace(fields[3]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return entries, nil
}

// ParseFile opens and parses the BCCWJ extract at path.
func ParseFile(path string) ([]corpus.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open BCCWJ file: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse BCCWJ: %w", err)
	}
	return entries, nil
}
