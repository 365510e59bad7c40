package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectory matches any *DirectoryError via errors.Is
	ErrDirectory = errors.New("directory error")
	// ErrRead matches any *ReadError via errors.Is
	ErrRead = errors.New("read error")
	// ErrNotText is the cause of a ReadError for content that is not valid UTF-8
	ErrNotText = errors.New("not valid UTF-8 text")
)

// DirectoryError reports a directory that could not be listed
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("list directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

func (e *DirectoryError) Is(target error) bool { return target == ErrDirectory }

// ReadError reports a selected file that could not be read as text
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrRead }
