package fmerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates a resolved path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidPath indicates a path expression could not be split into
	// segments.
	ErrInvalidPath = errors.New("invalid path")

	// ErrEmptyPath indicates a path expression resolved to the empty string.
	ErrEmptyPath = fmt.Errorf("empty: %w", ErrInvalidPath)

	// ErrInvalidArguments indicates invalid arguments were provided.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")
)

// FileNotFoundError reports that a resolved path does not exist. Path holds
// the resolved path, not the expression it was resolved from.
type FileNotFoundError struct {
	Path    string
	Message string
}

// NewFileNotFoundError creates a [FileNotFoundError] for path.
func NewFileNotFoundError(path, message string) *FileNotFoundError {
	return &FileNotFoundError{Path: path, Message: message}
}

func (e *FileNotFoundError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", ErrFileNotFound, e.Path)
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

// Unwrap allows matching with [ErrFileNotFound].
func (e *FileNotFoundError) Unwrap() error {
	return ErrFileNotFound
}
