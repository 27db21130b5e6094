package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
)

func mustParse(t *testing.T, content string) *Document {
	t.Helper()
	return ParseBytes([]byte(content))
}

func sections(d *Document) map[string]string {
	out := make(map[string]string, d.Len())
	for _, name := range d.Names() {
		body, _ := d.Section(name)
		out[name] = body
	}
	return out
}

func TestParse_NoHeadings_SingleHeaderSection(t *testing.T) {
	doc := mustParse(t, "  first line\nsecond\t\n\nthird\n")

	require.Equal(t, []string{HeaderSection}, doc.Names())
	body, ok := doc.Section(HeaderSection)
	require.True(t, ok)
	assert.Equal(t, "first line\nsecond\n\nthird", body)
}

func TestParse_EmptyInput_YieldsEmptyHeader(t *testing.T) {
	doc := mustParse(t, "")

	assert.Equal(t, []string{HeaderSection}, doc.Names())
	body, _ := doc.Section(HeaderSection)
	assert.Empty(t, body)
	assert.Empty(t, doc.Lines())
}

func TestParse_Sections(t *testing.T) {
	doc := mustParse(t, "Daily report\n# Done\n- shipped parser\n## detail\n#Todo\n- buy milk\n- call bob\n")

	assert.Equal(t, []string{HeaderSection, "Done", "Todo"}, doc.Names())
	assert.Equal(t, map[string]string{
		HeaderSection: "Daily report",
		"Done":        "- shipped parser\n## detail",
		"Todo":        "- buy milk\n- call bob",
	}, sections(doc))
}

func TestParse_LeadingHeadingHasNoHeader(t *testing.T) {
	doc := mustParse(t, "# Notes\nsomething\n")

	assert.Equal(t, []string{"Notes"}, doc.Names())
	_, ok := doc.Section(HeaderSection)
	assert.False(t, ok)
}

func TestParse_ConsecutiveHeadings(t *testing.T) {
	doc := mustParse(t, "# A\n# B\nbody\n")

	a, ok := doc.Section("A")
	require.True(t, ok)
	assert.Equal(t, "", a)
	b, _ := doc.Section("B")
	assert.Equal(t, "body", b)
}

func TestParse_DuplicateSectionKeepsFirstPositionLastContent(t *testing.T) {
	doc := mustParse(t, "# A\nx\n# B\ny\n# A\nz\n")

	assert.Equal(t, []string{"A", "B"}, doc.Names())
	a, _ := doc.Section("A")
	assert.Equal(t, "z", a)

	emptied := mustParse(t, "# A\nx\n# A\n")
	a, _ = emptied.Section("A")
	assert.Equal(t, "", a)
}

func TestParse_CRLFAndIndentationStripped(t *testing.T) {
	doc := mustParse(t, "# Todo\r\n    - indented\r\n")

	body, _ := doc.Section("Todo")
	assert.Equal(t, "- indented", body)
	assert.Equal(t, []string{"# Todo", "- indented"}, doc.Lines())
}

func TestParse_LineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   []string
	}{
		{"lf", "# Todo\n- a\n", []string{"# Todo", "- a"}},
		{"crlf", "# Todo\r\n- a\r\n", []string{"# Todo", "- a"}},
		{"lone cr", "# Todo\r- a\r", []string{"# Todo", "- a"}},
		{"mixed", "# Todo\r\n- a\r- b\n", []string{"# Todo", "- a", "- b"}},
		{"no trailing newline", "# Todo\n- a", []string{"# Todo", "- a"}},
		{"blank lines kept", "# Todo\n\n\n", []string{"# Todo", "", ""}},
		{"cr then blank lf", "a\r\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lines, mustParse(t, tt.content).Lines())
		})
	}
}

func TestParse_VeryLongLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	doc := mustParse(t, "# Todo\n"+long+"\n# Notes\n")

	body, ok := doc.Section("Todo")
	require.True(t, ok)
	assert.Len(t, body, len(long))
	assert.Equal(t, []string{"Todo", "Notes"}, doc.Names())
}

func TestHeadingName(t *testing.T) {
	tests := []struct {
		line    string
		heading bool
		name    string
	}{
		{"# Todo", true, "Todo"},
		{"#Todo", true, "Todo"},
		{"#", false, ""},
		{"# ", true, ""},
		{"#  spaced", true, " spaced"},
		{"## Sub", false, ""},
		{"text # not", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.heading, IsHeading(tt.line))
			if tt.heading {
				assert.Equal(t, tt.name, HeadingName(tt.line))
			}
		})
	}
}

func TestIsSameAs(t *testing.T) {
	a := mustParse(t, "# Notes\n\n# Todo\n- x\n")
	b := mustParse(t, "  # Notes  \n\n# Todo\n- x")
	c := mustParse(t, "# Notes\n\n# Todo\n- y\n")
	d := mustParse(t, "# Notes\n# Todo\n- x\n")

	assert.True(t, a.IsSameAs(a), "reflexive")
	assert.True(t, a.IsSameAs(b))
	assert.True(t, b.IsSameAs(a), "symmetric")
	assert.False(t, a.IsSameAs(c))
	assert.False(t, c.IsSameAs(a))
	assert.False(t, a.IsSameAs(d), "line count matters")
	assert.False(t, a.IsSameAs(nil))
}

func TestSerialize(t *testing.T) {
	doc := New()
	doc.Set(HeaderSection, "")
	doc.Set("Notes", "line one\nline two")
	doc.Set("Todo", "- buy milk")

	assert.Equal(t, "# HEADER\n\n# Notes\nline one\nline two\n# Todo\n- buy milk\n", doc.String())
}

func TestSerialize_RoundTrip(t *testing.T) {
	inputs := []string{
		"intro\n# Notes\nfoo\n\nbar\n# Todo\n- a\n",
		"# A\n# B\n",
		"just text",
		"",
	}
	for _, in := range inputs {
		first := mustParse(t, in).String()
		second := mustParse(t, first).String()
		assert.Equal(t, first, second, "input %q", in)
	}
}

func TestLookup_CaseInsensitiveFirstMatch(t *testing.T) {
	doc := mustParse(t, "# TODO\nfirst\n# todo\nsecond\n")

	key, body, ok := doc.Lookup("ToDo")
	require.True(t, ok)
	assert.Equal(t, "TODO", key)
	assert.Equal(t, "first", body)

	_, _, ok = doc.Lookup("done")
	assert.False(t, ok)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new_report.md")
	require.NoError(t, os.WriteFile(path, []byte("# Todo\n- x\n"), 0o600))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	body, _ := doc.Section("Todo")
	assert.Equal(t, "- x", body)

	_, err = ParseFile(filepath.Join(dir, "missing.md"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
	classified, _ := errors.AsClassified(err)
	p, _ := classified.Context().GetString("path")
	assert.True(t, strings.HasSuffix(p, "missing.md"))
}
