package importer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/quotedprintable"
	"os"
	"strings"

	"github.com/emersion/go-vcard"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/hazyhaar/smartdial/pkg/directory"
)

func init() {
	Register(&vcardAdapter{})
}

type vcardAdapter struct{}

func (a *vcardAdapter) ID() string          { return "vcard" }
func (a *vcardAdapter) Description() string { return "vCard 2.1/3.0/4.0 export (.vcf)" }

func (a *vcardAdapter) Import(ctx context.Context, src Source, outputDir string) error {
	return withDownloadDir(outputDir, func(dlDir string) error {
		path, err := fetch(ctx, src.SourceURL, dlDir, ".vcf")
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		contacts, err := parseVCards(f)
		if err != nil {
			return fmt.Errorf("parse vcard: %w", err)
		}
		slog.Info("vcard parsed", "source", src.ID, "contacts", len(contacts))
		return writeDirectory(src, outputDir, contacts)
	})
}

// parseVCards decodes every card of r. Cards with neither FN nor N are
// skipped.
func parseVCards(r io.Reader) ([]directory.Contact, error) {
	legacy, err := legacyLines(r)
	if err != nil {
		return nil, err
	}

	var contacts []directory.Contact
	dec := vcard.NewDecoder(legacy)
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return contacts, nil
		}
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", len(contacts)+1, err)
		}
		decodeFields(card)
		if c, ok := contactFromCard(card); ok {
			contacts = append(contacts, c)
		}
	}
}

func contactFromCard(card vcard.Card) (directory.Contact, bool) {
	var c directory.Contact
	c.Name = strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName))
	if c.Name == "" {
		if n := card.Name(); n != nil {
			c.Name = joinNonEmpty(n.GivenName, n.AdditionalName, n.FamilyName)
		}
	}
	if c.Name == "" {
		return c, false
	}

	for _, tel := range card.Values(vcard.FieldTelephone) {
		if tel = strings.TrimSpace(strings.TrimPrefix(tel, "tel:")); tel != "" {
			c.Numbers = append(c.Numbers, tel)
		}
	}
	for _, f := range []struct{ key, field string }{
		{"org", vcard.FieldOrganization},
		{"email", vcard.FieldEmail},
	} {
		v, _, _ := strings.Cut(card.Value(f.field), ";")
		if v = strings.TrimSpace(v); v != "" {
			if c.Metadata == nil {
				c.Metadata = make(map[string]string)
			}
			c.Metadata[f.key] = v
		}
	}
	return c, true
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// decodeFields undoes vCard 2.1 transfer encodings and legacy charsets in
// place, so every field value is UTF-8 text.
func decodeFields(card vcard.Card) {
	for _, fields := range card {
		for _, f := range fields {
			if strings.EqualFold(f.Params.Get("ENCODING"), "QUOTED-PRINTABLE") {
				if b, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(f.Value))); err == nil {
					f.Value = string(b)
				}
			}
			if cs := f.Params.Get("CHARSET"); cs != "" && !strings.EqualFold(cs, "UTF-8") {
				if enc, err := htmlindex.Get(cs); err == nil {
					if s, err := enc.NewDecoder().String(f.Value); err == nil {
						f.Value = s
					}
				}
			}
		}
	}
}

// legacyLines rewrites the vCard 2.1 constructs the decoder rejects: soft
// line breaks of quoted-printable values are joined, bare parameters
// (TEL;CELL) get a TYPE or ENCODING name, and blank lines are dropped.
func legacyLines(r io.Reader) (io.Reader, error) {
	var (
		b       strings.Builder
		pending string
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if pending != "" {
			line = strings.TrimSuffix(pending, "=") + line
			pending = ""
		}
		switch {
		case strings.HasSuffix(line, "=") && isQuotedPrintable(line):
			pending = line
			continue
		case line == "":
			continue
		case line[0] == ' ' || line[0] == '\t':
			b.WriteString(line)
		default:
			b.WriteString(namedParams(line))
		}
		b.WriteString("\r\n")
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vcard: %w", err)
	}
	if pending != "" {
		b.WriteString(namedParams(pending) + "\r\n")
	}
	return strings.NewReader(b.String()), nil
}

func isQuotedPrintable(line string) bool {
	head, _, _ := strings.Cut(line, ":")
	return strings.Contains(strings.ToUpper(head), "QUOTED-PRINTABLE")
}

func namedParams(line string) string {
	head, value, ok := strings.Cut(line, ":")
	if !ok || !strings.Contains(head, ";") {
		return line
	}
	parts := strings.Split(head, ";")
	for i := 1; i < len(parts); i++ {
		k, v, hasValue := strings.Cut(parts[i], "=")
		switch {
		case hasValue:
			parts[i] = strings.ToUpper(k) + "=" + v
		case strings.EqualFold(k, "QUOTED-PRINTABLE"), strings.EqualFold(k, "BASE64"), strings.EqualFold(k, "8BIT"):
			parts[i] = "ENCODING=" + strings.ToUpper(k)
		default:
			parts[i] = "TYPE=" + k
		}
	}
	return strings.Join(parts, ";") + ":" + value
}
