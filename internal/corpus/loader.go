package corpus

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ppiankov/sentex/internal/logger"
	"github.com/ppiankov/sentex/internal/model"
)

// Options configures a Loader
type Options struct {
	Workers        int     // Concurrent file reads, minimum 1
	ReadsPerSecond float64 // Read pacing; 0 disables it
	Burst          int     // Token bucket burst, defaults to Workers
}

// Loader enumerates and reads Markdown files
type Loader struct {
	workers int
	limiter *rate.Limiter
}

// NewLoader creates a loader with the given options
func NewLoader(opts Options) *Loader {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	l := &Loader{workers: opts.Workers}
	if opts.ReadsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = opts.Workers
		}
		l.limiter = rate.NewLimiter(rate.Limit(opts.ReadsPerSecond), burst)
	}
	return l
}

// Load reads every regular file in dir whose extension equals ext.
// Subdirectories are not descended into. Any failure aborts the whole load
// and no partial corpus is returned.
func Load(ctx context.Context, dir, ext string) (model.Corpus, error) {
	return NewLoader(Options{}).Load(ctx, dir, ext)
}

// LoadFile reads a single file into a one-element corpus
func LoadFile(ctx context.Context, path string) (model.Corpus, error) {
	return NewLoader(Options{}).LoadFile(ctx, path)
}

// Load reads every regular file in dir whose extension equals ext
func (l *Loader) Load(ctx context.Context, dir, ext string) (model.Corpus, error) {
	paths, err := List(dir, ext)
	if err != nil {
		return nil, err
	}

	logger.Debug("loader: %d file(s) with extension %q in %s", len(paths), normalizeExt(ext), dir)

	return l.readAll(ctx, paths)
}

// LoadFile reads path without enumeration or extension filtering
func (l *Loader) LoadFile(ctx context.Context, path string) (model.Corpus, error) {
	doc, err := l.read(ctx, path)
	if err != nil {
		return nil, err
	}
	return model.Corpus{doc}, nil
}

// List returns the paths of regular files in dir whose extension equals
// ext, in directory-listing order. A leading dot on ext is ignored.
func List(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DirectoryError{Path: dir, Err: err}
	}

	ext = normalizeExt(ext)
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		got, ok := extension(entry.Name())
		if !ok || got != ext {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks; anything unreadable is simply not a file
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (l *Loader) readAll(ctx context.Context, paths []string) (model.Corpus, error) {
	docs := make(model.Corpus, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i, path := range paths {
		g.Go(func() error {
			doc, err := l.read(ctx, path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (l *Loader) read(ctx context.Context, path string) (model.Document, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return model.Document{}, &ReadError{Path: path, Err: err}
		}
	} else if err := ctx.Err(); err != nil {
		return model.Document{}, &ReadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return model.Document{}, &ReadError{Path: path, Err: ErrNotText}
	}

	return model.Document{Path: path, Text: string(data)}, nil
}

// extension returns the text after the last dot of name. Names without a
// dot, and dotfiles such as ".md", have no extension.
func extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

func normalizeExt(ext string) string {
	return strings.TrimPrefix(ext, ".")
}
