package worker

import (
	"context"
	"fmt"

	"github.com/ppiankov/sentex/internal/model"
)

// DocumentParser turns one document into its sentences
type DocumentParser interface {
	ParseDocument(ctx context.Context, doc model.Document) (*model.DocumentSentences, error)
}

// ParseJob parses the document at position Index of a corpus
type ParseJob struct {
	Index  int
	Doc    model.Document
	Parser DocumentParser
}

// Execute executes the parse job
func (j *ParseJob) Execute(ctx context.Context) Result {
	doc, err := j.Parser.ParseDocument(ctx, j.Doc)
	return &ParseResult{
		Index:    j.Index,
		Path:     j.Doc.Path,
		Document: doc,
		Error:    err,
	}
}

// ParseResult is the result of a parse job
type ParseResult struct {
	Index    int
	Path     string
	Document *model.DocumentSentences
	Error    error
}

// GetError returns the error from the parse result
func (r *ParseResult) GetError() error {
	return r.Error
}

// BatchProcessor parses documents concurrently
type BatchProcessor struct {
	parser      DocumentParser
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(parser DocumentParser, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		parser:      parser,
		concurrency: concurrency,
	}
}

// ProcessDocuments parses docs concurrently and returns the results in
// corpus order. It fails if ctx ends before every document is parsed.
func (b *BatchProcessor) ProcessDocuments(ctx context.Context, docs model.Corpus) ([]*ParseResult, error) {
	if len(docs) == 0 {
		return []*ParseResult{}, nil
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()
	defer pool.Shutdown()

	go func() {
		defer pool.Close()
		for i, doc := range docs {
			if !pool.Submit(&ParseJob{Index: i, Doc: doc, Parser: b.parser}) {
				return
			}
		}
	}()

	ordered := make([]*ParseResult, len(docs))
	for _, result := range pool.Collect() {
		r := result.(*ParseResult)
		ordered[r.Index] = r
	}

	for i, r := range ordered {
		if r == nil {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("parse %s: %w", docs[i].Path, err)
			}
			return nil, fmt.Errorf("parse %s: no result", docs[i].Path)
		}
	}

	return ordered, nil
}
