// Package directory loads contact lists described by a manifest and
// searches them with keypad queries.
package directory

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Contact is one entry of a directory.
type Contact struct {
	Name     string            `json:"name"`
	Numbers  []string          `json:"numbers,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Directory is one loaded contact list with its manifest and name index.
type Directory struct {
	Manifest  *Manifest `json:"manifest"`
	Contacts  []Contact `json:"-"`
	byKey     map[string][]int
	normalize Normalizer
}

// LoadDirectory reads a manifest.yaml and loads contacts from gob or csv.
func LoadDirectory(dir string) (*Directory, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	d := &Directory{
		Manifest:  manifest,
		normalize: GetNormalizer(manifest.Format.Normalize),
	}

	// Gob takes priority over CSV.
	gobPath := filepath.Join(dir, "data.gob")
	if _, err := os.Stat(gobPath); err == nil {
		if err := d.loadGob(gobPath); err != nil {
			return nil, fmt.Errorf("directory %s: %w", manifest.ID, err)
		}
	} else if err := d.loadCSV(filepath.Join(dir, manifest.DataFile)); err != nil {
		return nil, fmt.Errorf("directory %s: %w", manifest.ID, err)
	}

	d.index()
	return d, nil
}

// New builds an in-memory directory from contacts.
func New(m *Manifest, contacts []Contact) *Directory {
	d := &Directory{
		Manifest:  m,
		Contacts:  contacts,
		normalize: GetNormalizer(m.Format.Normalize),
	}
	d.index()
	return d
}

func (d *Directory) index() {
	d.byKey = make(map[string][]int, len(d.Contacts))
	var collisions int
	for i, c := range d.Contacts {
		key := d.normalize(c.Name)
		if len(d.byKey[key]) > 0 {
			collisions++
		}
		d.byKey[key] = append(d.byKey[key], i)
	}
	if collisions > 0 {
		slog.Debug("shared names after normalization", "directory", d.Manifest.ID, "collisions", collisions)
	}
}

func (d *Directory) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	// Transcode non-UTF-8 encodings declared in the manifest.
	var reader io.Reader = f
	if enc := d.Manifest.Format.Encoding; enc != "" && !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return fmt.Errorf("unsupported encoding %q: %w", enc, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	r := csv.NewReader(reader)
	if delim := d.Manifest.Format.Delimiter; delim != "" {
		r.Comma = []rune(delim)[0]
	}
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	var header []string
	if d.Manifest.Format.HasHeader {
		header, err = r.Read()
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
	}

	// Without a header the layout is name, then numbers.
	nameIdx, numberIdx := 0, []int{1}
	if header != nil {
		if col := d.Manifest.Format.NameColumn; col != "" {
			if nameIdx = columnIndex(header, col); nameIdx < 0 {
				return fmt.Errorf("name column %q not found in header %v", col, header)
			}
		}
		if cols := d.Manifest.Format.NumberColumns; len(cols) > 0 {
			numberIdx = numberIdx[:0]
			for _, col := range cols {
				i := columnIndex(header, col)
				if i < 0 {
					return fmt.Errorf("number column %q not found in header %v", col, header)
				}
				numberIdx = append(numberIdx, i)
			}
		}
	}

	metaIdx := make(map[string]int)
	for _, mc := range d.Manifest.MetadataCols {
		if i := columnIndex(header, mc.Column); i >= 0 {
			metaIdx[mc.Name] = i
		}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		if nameIdx >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameIdx])
		if name == "" {
			continue
		}

		c := Contact{Name: name}
		for _, i := range numberIdx {
			if i < len(record) {
				if n := strings.TrimSpace(record[i]); n != "" {
					c.Numbers = append(c.Numbers, n)
				}
			}
		}
		if len(metaIdx) > 0 {
			c.Metadata = make(map[string]string, len(metaIdx))
			for name, i := range metaIdx {
				if i < len(record) {
					c.Metadata[name] = strings.TrimSpace(record[i])
				}
			}
		}
		d.Contacts = append(d.Contacts, c)
	}
	return nil
}

// Lookup returns the contacts whose normalized name equals the normalized
// form of name.
func (d *Directory) Lookup(name string) []Contact {
	idx := d.byKey[d.normalize(name)]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Contact, len(idx))
	for i, j := range idx {
		out[i] = d.Contacts[j]
	}
	return out
}

// NormalizeName applies this directory's normalizer to a name.
func (d *Directory) NormalizeName(name string) string {
	return d.normalize(name)
}

func columnIndex(header []string, col string) int {
	for i, h := range header {
		if h == col {
			return i
		}
	}
	return -1
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
