package model

// Result is the outcome of one extraction run
type Result struct {
	Source    string              `json:"source"`    // Directory or file that was extracted
	Extension string              `json:"extension"` // Extension filter used for directories
	Documents []DocumentSentences `json:"documents"` // One entry per document, enumeration order
}

// DocumentSentences pairs a document with the sentences parsed from it
type DocumentSentences struct {
	Path      string   `json:"path"`
	Title     string   `json:"title,omitempty"`
	Sentences []string `json:"sentences"`
	Cached    bool     `json:"-"` // Whether sentences came from the parse cache
}

// Sentences returns the bare per-document sentence lists
func (r *Result) Sentences() [][]string {
	out := make([][]string, len(r.Documents))
	for i, doc := range r.Documents {
		out[i] = doc.Sentences
	}
	return out
}

// TotalSentences counts sentences across all documents
func (r *Result) TotalSentences() int {
	total := 0
	for _, doc := range r.Documents {
		total += len(doc.Sentences)
	}
	return total
}

// Last returns a result holding only the final document, or the result itself if it is empty
func (r *Result) Last() *Result {
	if len(r.Documents) == 0 {
		return r
	}
	return &Result{
		Source:    r.Source,
		Extension: r.Extension,
		Documents: r.Documents[len(r.Documents)-1:],
	}
}
