// Package nlt parses NLT frequency-list CSV extracts into corpus entries.
// Pure function: reader in, entries out, frequency order preserved.
package nlt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hikarukin/waniwords/internal/corpus"
)

// Parse reads an NLT CSV extract. Fields per row: lemma, word type,
// reading. Rows with fewer than three fields are skipped.
func Parse(r io.Reader) ([]corpus.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	var entries []corpus.Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if len(record) < 3 {
			continue
		}

		entries = append(entries, corpus.Entry{
			Lemma:   strings.TrimSpace(record[0]),
			Type:    strings.TrimSpace(record[1]),
			Reading: strings.TrimSpace(record[2]),
		})
	}

	return entries, nil
}

// ParseFile opens and parses the NLT extract at path.
func ParseFile(path string) ([]corpus.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open NLT file: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse NLT: %w", err)
	}
	return entries, nil
}
