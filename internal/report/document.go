package report

import (
	"bytes"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
)

// HeaderSection names the section holding content that precedes the first heading.
const HeaderSection = "HEADER"

// Document is an ordered mapping of section name to section body.
type Document struct {
	lines  []string
	order  []string
	bodies map[string]string
}

// New returns an empty document, used when synthesizing a report.
func New() *Document {
	return &Document{bodies: make(map[string]string)}
}

// Parse builds a document from raw lines. Each line is trimmed before use.
func Parse(lines []string) *Document {
	d := New()
	d.lines = make([]string, len(lines))
	for i, line := range lines {
		d.lines[i] = strings.TrimSpace(line)
	}

	name := HeaderSection
	var body []string
	seen := false
	commit := func() { d.Set(name, strings.Join(body, "\n")) }

	for _, line := range d.lines {
		if IsHeading(line) {
			if seen {
				commit()
			}
			name = HeadingName(line)
			body = nil
			seen = true
			continue
		}
		body = append(body, line)
		seen = true
	}
	// An empty input still yields the HEADER section.
	commit()
	return d
}

// ParseBytes splits content into lines and parses them. "\n", "\r\n" and a lone "\r" all
// end a line; a trailing line ending does not produce an extra empty line.
func ParseBytes(content []byte) *Document {
	return Parse(splitLines(content))
}

func splitLines(content []byte) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, string(content[start:i]))
			start = i + 1
		case '\r':
			lines = append(lines, string(content[start:i]))
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, string(content[start:]))
	}
	return lines
}

// ParseFile reads a report from disk and parses it.
func ParseFile(path string) (*Document, error) {
	// #nosec G304 -- paths come from the resolved project configuration.
	content, err := os.ReadFile(path)
	if err != nil {
		category := errors.CategoryFileSystem
		if os.IsNotExist(err) {
			category = errors.CategoryNotFound
		}
		return nil, errors.WrapError(err, category, "failed to read report").
			WithContext("path", path).
			Build()
	}
	return ParseBytes(content), nil
}

// IsHeading reports whether line opens a new section: one '#' followed by anything but
// another '#'. A lone "#" is body text.
func IsHeading(line string) bool {
	return len(line) > 1 && line[0] == '#' && line[1] != '#'
}

// HeadingName returns the section name declared by a heading line.
func HeadingName(line string) string {
	if rest, ok := strings.CutPrefix(line, "# "); ok {
		return rest
	}
	return strings.TrimPrefix(line, "#")
}

// Lines returns a copy of the trimmed source lines.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// Names returns section names in first-appearance order.
func (d *Document) Names() []string {
	return append([]string(nil), d.order...)
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.order)
}

// Section returns the body of the section with exactly this name.
func (d *Document) Section(name string) (string, bool) {
	body, ok := d.bodies[name]
	return body, ok
}

// Set assigns a section body. A new name is appended; an existing one keeps its position.
func (d *Document) Set(name, body string) {
	if _, exists := d.bodies[name]; !exists {
		d.order = append(d.order, name)
	}
	d.bodies[name] = body
}

// Lookup finds the first section whose name matches under Unicode case folding and
// returns its actual name and body.
func (d *Document) Lookup(name string) (string, string, bool) {
	fold := cases.Fold()
	want := fold.String(name)
	for _, key := range d.order {
		if fold.String(key) == want {
			return key, d.bodies[key], true
		}
	}
	return "", "", false
}

// IsSameAs reports whether both documents were parsed from the same trimmed lines.
func (d *Document) IsSameAs(other *Document) bool {
	if other == nil || len(d.lines) != len(other.lines) {
		return false
	}
	for i := range d.lines {
		if d.lines[i] != other.lines[i] {
			return false
		}
	}
	return true
}

// WriteTo serializes the document as "# <name>\n<body>\n" per section.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, name := range d.order {
		n, err := io.WriteString(w, "# "+name+"\n"+d.bodies[name]+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}

// String returns the serialized document.
func (d *Document) String() string {
	return string(d.Bytes())
}
