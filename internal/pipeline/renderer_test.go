package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ppiankov/sentex/internal/model"
)

func sampleResult() *model.Result {
	return &model.Result{
		Source:    "posts",
		Extension: "md",
		Documents: []model.DocumentSentences{
			{Path: "posts/a.md", Title: "A & B", Sentences: []string{"First <one>.", "fn main() {}\n"}},
			{Path: "posts/b.md", Sentences: []string{"Second."}},
		},
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	if _, err := NewRenderer("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(&buf, sampleResult()); err != nil {
		t.Fatalf("RenderText: %v", err)
	}

	want := "==> posts/a.md <==\n0, First <one>.\n1, fn main() {}\n\n\n==> posts/b.md <==\n0, Second.\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRenderText_SingleDocumentHasNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(&buf, sampleResult().Last()); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if buf.String() != "0, Second.\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded model.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Documents) != 2 || decoded.Documents[0].Title != "A & B" {
		t.Errorf("unexpected decoded result %+v", decoded)
	}
}

func TestRenderHTML_EscapesAndSeparatesCode(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, sampleResult()); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<article data-path="posts/a.md">`,
		"<h1>A &amp; B</h1>",
		"<p>First &lt;one&gt;.</p>",
		"<pre><code>fn main() {}\n</code></pre>",
		"<p>Second.</p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Count(out, "<article") != 2 {
		t.Errorf("expected 2 articles, got:\n%s", out)
	}
}

func TestRenderHTML_NewlineDecidesCode(t *testing.T) {
	result := &model.Result{Documents: []model.DocumentSentences{{
		Path:      "code.md",
		Sentences: []string{"foo.", "bar\n"},
	}}}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, result); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<p>foo.</p>") {
		t.Errorf("expected a sentence without newline to render as a paragraph, got:\n%s", out)
	}
	if !strings.Contains(out, "<pre><code>bar\n</code></pre>") {
		t.Errorf("expected a sentence with a newline to render as code, got:\n%s", out)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, sampleResult())
	if !strings.Contains(buf.String(), "3 sentences from 2 documents") {
		t.Errorf("unexpected summary %q", buf.String())
	}
}
