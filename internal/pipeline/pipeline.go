package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/ppiankov/sentex/internal/cache"
	"github.com/ppiankov/sentex/internal/corpus"
	"github.com/ppiankov/sentex/internal/extract"
	"github.com/ppiankov/sentex/internal/logger"
	"github.com/ppiankov/sentex/internal/model"
	"github.com/ppiankov/sentex/internal/worker"
)

// Pipeline orchestrates loading, parsing and caching
type Pipeline struct {
	loader *corpus.Loader
	parser *extract.Parser
	store  *cache.SentenceStore // nil when caching is disabled
	batch  *worker.BatchProcessor
	config *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var store *cache.SentenceStore
	if cfg.Cache.Enabled {
		store = cache.NewSentenceStore(cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL))
	}

	p := &Pipeline{
		loader: corpus.NewLoader(corpus.Options{
			Workers:        cfg.Loader.ReadWorkers,
			ReadsPerSecond: cfg.Loader.ReadsPerSecond,
			Burst:          cfg.Loader.ReadBurst,
		}),
		parser: extract.NewParser(extract.Options{
			FlushTrailing:    cfg.Parser.FlushTrailing,
			KeepCodeHeadings: cfg.Parser.KeepCodeHeadings,
		}),
		store:  store,
		config: cfg,
	}
	p.batch = worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	return p
}

// Load reads the corpus at path. A directory is enumerated with the
// configured extension; anything else is loaded as a single file.
func (p *Pipeline) Load(ctx context.Context, path string) (model.Corpus, error) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return p.loader.LoadFile(ctx, path)
	}
	return p.loader.Load(ctx, path, p.config.Loader.Extension)
}

// Extract loads path and parses every document, preserving corpus order
func (p *Pipeline) Extract(ctx context.Context, path string) (*model.Result, error) {
	docs, err := p.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	return p.ExtractCorpus(ctx, path, docs)
}

// ExtractCorpus parses an already loaded corpus
func (p *Pipeline) ExtractCorpus(ctx context.Context, source string, docs model.Corpus) (*model.Result, error) {
	results, err := p.batch.ProcessDocuments(ctx, docs)
	if err != nil {
		return nil, err
	}

	result := &model.Result{
		Source:    source,
		Extension: p.config.Loader.Extension,
		Documents: make([]model.DocumentSentences, len(results)),
	}

	cached := 0
	for i, r := range results {
		if r.Error != nil {
			return nil, fmt.Errorf("parse %s: %w", r.Path, r.Error)
		}
		result.Documents[i] = *r.Document
		if r.Document.Cached {
			cached++
		}
	}

	logger.Debug("pipeline: parsed %d document(s), %d from cache", len(results), cached)

	return result, nil
}

// ParseDocument parses one document, consulting the cache when enabled
func (p *Pipeline) ParseDocument(ctx context.Context, doc model.Document) (*model.DocumentSentences, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := doc.Title
	if title == "" {
		title = extract.Title(doc.Text)
	}
	out := &model.DocumentSentences{Path: doc.Path, Title: title}

	opts := p.parser.Options()
	if p.store != nil {
		if sentences, found := p.store.Get(doc.Text, opts); found {
			out.Sentences = sentences
			out.Cached = true
			return out, nil
		}
	}

	out.Sentences = p.parser.Parse(doc.Text)

	if p.store != nil {
		if err := p.store.Put(doc.Text, opts, out.Sentences); err != nil {
			// The cache is an optimisation; a failed write never fails the run
			logger.Warn("cache write for %s: %v", doc.Path, err)
		}
	}

	return out, nil
}
