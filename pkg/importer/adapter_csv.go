package importer

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hazyhaar/smartdial/pkg/directory"
)

func init() {
	Register(&csvAdapter{})
}

type csvAdapter struct{}

func (a *csvAdapter) ID() string { return "csv" }
func (a *csvAdapter) Description() string {
	return "CSV export: name then phone numbers, ',' or ';' delimited, optional header"
}

func (a *csvAdapter) Import(ctx context.Context, src Source, outputDir string) error {
	return withDownloadDir(outputDir, func(dlDir string) error {
		path, err := fetch(ctx, src.SourceURL, dlDir, ".csv")
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		contacts, err := parseContactsCSV(f)
		if err != nil {
			return fmt.Errorf("parse csv: %w", err)
		}
		slog.Info("csv parsed", "source", src.ID, "contacts", len(contacts))
		return writeDirectory(src, outputDir, contacts)
	})
}

var (
	nameHeaders  = []string{"name", "full name", "display name", "fn", "nom", "contact"}
	phoneHeaders = []string{"phone", "tel", "mobile", "cell", "number", "fax", "téléphone", "telephone"}
)

// parseContactsCSV reads contacts from r. The delimiter is ';' when the
// first line has more semicolons than commas. A first row whose cells look
// like column names is a header: it picks the name column and every phone
// column, and the other columns become metadata. Without a header the first
// column is the name and the rest are numbers.
func parseContactsCSV(r io.Reader) ([]directory.Contact, error) {
	br := bufio.NewReader(r)
	first, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	firstLine, _, _ := strings.Cut(string(first), "\n")

	cr := csv.NewReader(br)
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		cr.Comma = ';'
	}
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var (
		contacts []directory.Contact
		nameIdx  = 0
		phoneIdx []int
		metaIdx  map[string]int
		row      int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row++
		if row == 1 {
			rec[0] = strings.TrimPrefix(rec[0], "\uFEFF")
			if n, p, m, ok := headerColumns(rec); ok {
				nameIdx, phoneIdx, metaIdx = n, p, m
				continue
			}
		}

		if nameIdx >= len(rec) {
			continue
		}
		c := directory.Contact{Name: strings.TrimSpace(rec[nameIdx])}
		if c.Name == "" {
			continue
		}
		cols := phoneIdx
		if cols == nil {
			for i := range rec {
				if i != nameIdx {
					cols = append(cols, i)
				}
			}
		}
		for _, i := range cols {
			if i < len(rec) {
				if n := strings.TrimSpace(rec[i]); n != "" {
					c.Numbers = append(c.Numbers, n)
				}
			}
		}
		for k, i := range metaIdx {
			if i < len(rec) {
				if v := strings.TrimSpace(rec[i]); v != "" {
					if c.Metadata == nil {
						c.Metadata = make(map[string]string)
					}
					c.Metadata[k] = v
				}
			}
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func headerColumns(rec []string) (name int, phones []int, meta map[string]int, ok bool) {
	name = -1
	meta = make(map[string]int)
	for i, cell := range rec {
		h := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case name < 0 && matchesAny(h, nameHeaders, true):
			name = i
		case matchesAny(h, phoneHeaders, false):
			phones = append(phones, i)
		case h != "":
			meta[h] = i
		}
	}
	if name < 0 {
		return 0, nil, nil, false
	}
	if phones == nil {
		phones = []int{}
	}
	return name, phones, meta, true
}

func matchesAny(h string, words []string, exact bool) bool {
	for _, w := range words {
		if h == w || (!exact && strings.Contains(h, w)) {
			return true
		}
	}
	return false
}
