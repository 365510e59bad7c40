package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ppiankov/sentex/internal/model"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatHTML = "html"
)

// Renderer writes extraction results in one of the supported formats
type Renderer struct {
	format string
}

// NewRenderer creates a renderer for format
func NewRenderer(format string) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON, FormatHTML:
		return &Renderer{format: format}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or html)", format)
	}
}

// Render writes result to w
func (r *Renderer) Render(w io.Writer, result *model.Result) error {
	switch r.format {
	case FormatJSON:
		return RenderJSON(w, result)
	case FormatHTML:
		return RenderHTML(w, result)
	default:
		return RenderText(w, result)
	}
}

// RenderText prints "<index>, <sentence>" lines. Each document gets a
// "==> path <==" header when there is more than one.
func RenderText(w io.Writer, result *model.Result) error {
	multi := len(result.Documents) > 1

	for i, doc := range result.Documents {
		if multi {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", doc.Path); err != nil {
				return err
			}
		}
		for j, sentence := range doc.Sentences {
			if _, err := fmt.Fprintf(w, "%d, %s\n", j, sentence); err != nil {
				return err
			}
		}
	}

	return nil
}

// RenderJSON writes the result as indented JSON
func RenderJSON(w io.Writer, result *model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// RenderHTML writes one <article> per document. Sentences are not tagged
// with their origin, so any sentence holding a newline is taken to be code
// and written as <pre><code>; everything else becomes a paragraph. A code
// line ending in "." closes its sentence without a newline, so that part of
// a code block is rendered as a paragraph.
func RenderHTML(w io.Writer, result *model.Result) error {
	for _, doc := range result.Documents {
		article := element(atom.Article, html.Attribute{Key: "data-path", Val: doc.Path})

		if doc.Title != "" {
			h1 := element(atom.H1)
			h1.AppendChild(text(doc.Title))
			article.AppendChild(h1)
		}

		for _, sentence := range doc.Sentences {
			if strings.Contains(sentence, "\n") {
				pre := element(atom.Pre)
				code := element(atom.Code)
				code.AppendChild(text(sentence))
				pre.AppendChild(code)
				article.AppendChild(pre)
				continue
			}
			p := element(atom.P)
			p.AppendChild(text(sentence))
			article.AppendChild(p)
		}

		if err := html.Render(w, article); err != nil {
			return fmt.Errorf("render HTML: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// RenderSummary prints a one-line summary of the run
func RenderSummary(w io.Writer, result *model.Result) {
	fmt.Fprintf(w, "✓ Extracted %d sentences from %d documents\n", result.TotalSentences(), len(result.Documents))
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
