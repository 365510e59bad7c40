package model

// Document is the raw text of one source file
type Document struct {
	Path  string `json:"path"`            // Source file path as enumerated
	Text  string `json:"-"`               // Full file contents, valid UTF-8
	Title string `json:"title,omitempty"` // Front matter title, if any
}

// Corpus is an ordered set of documents in enumeration order
type Corpus []Document

// Paths returns the document paths in corpus order
func (c Corpus) Paths() []string {
	paths := make([]string, len(c))
	for i, doc := range c {
		paths[i] = doc.Path
	}
	return paths
}
