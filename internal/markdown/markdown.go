// Package markdown renders daily reports to HTML.
package markdown

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
	"git.home.luguber.info/inful/dailyreport/internal/report"
)

// Options controls rendering.
type Options struct {
	// Title is placed in the page <title>; empty renders a body fragment only.
	Title string
}

func newRenderer() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.TaskList, extension.Linkify),
		goldmark.WithRendererOptions(gmhtml.WithXHTML()),
	)
}

// RenderBody converts a Markdown body to an HTML fragment.
func RenderBody(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := newRenderer().Convert(body, &buf); err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to render markdown").Build()
	}
	return buf.Bytes(), nil
}

// Source returns the Markdown for a report. The HEADER preamble is emitted without a
// heading line since its name is not part of the report text.
func Source(doc *report.Document) []byte {
	var buf bytes.Buffer
	for _, name := range doc.Names() {
		body, _ := doc.Section(name)
		if name != report.HeaderSection {
			buf.WriteString("# " + name + "\n")
		}
		buf.WriteString(body + "\n")
	}
	return buf.Bytes()
}

// Render converts a report to HTML, wrapping it in a full page when opts.Title is set.
func Render(doc *report.Document, opts Options) ([]byte, error) {
	fragment, err := RenderBody(Source(doc))
	if err != nil {
		return nil, err
	}
	if opts.Title == "" {
		return fragment, nil
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	page.WriteString(html.EscapeString(opts.Title))
	page.WriteString("</title>\n</head>\n<body>\n")
	page.Write(fragment)
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
