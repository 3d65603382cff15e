package pathutil

import (
	"errors"
	"io/fs"
	"time"

	"github.com/MacroPower/filemonitor/pkg/fmerrors"
)

const (
	msgNotFound        = "file does not exist"
	msgRequestNotFound = "requested file was not found"
)

// Exists resolves path and reports whether anything exists there. Errors
// other than the path not existing are returned as-is.
func (r *Resolver) Exists(path string) (bool, error) {
	_, err := r.fs.Stat(r.ResolveAbsolute(path))

	return statExists(err)
}

// IsDirectory resolves path and reports whether it is a directory. It fails
// if the path does not exist.
func (r *Resolver) IsDirectory(path string) (bool, error) {
	fi, err := r.fs.Stat(r.ResolveAbsolute(path))
	if err != nil {
		return false, err
	}

	return fi.IsDir(), nil
}

// IsFile resolves path and reports whether it is a regular file. It fails if
// the path does not exist.
func (r *Resolver) IsFile(path string) (bool, error) {
	fi, err := r.fs.Stat(r.ResolveAbsolute(path))
	if err != nil {
		return false, err
	}

	return fi.Mode().IsRegular(), nil
}

// EnsureFileExists resolves path and returns a [*fmerrors.FileNotFoundError]
// if nothing exists there.
func (r *Resolver) EnsureFileExists(path string) error {
	_, err := r.stat(r.ResolveAbsolute(path))

	return err
}

// ResolveExistingFilePath is [Resolver.ResolveFilePath], but fails with a
// [*fmerrors.FileNotFoundError] unless the result is an existing regular file.
func (r *Resolver) ResolveExistingFilePath(pathExpr, fileName string) (string, error) {
	resolved, err := r.ResolveFilePath(pathExpr, fileName)
	if err != nil {
		return "", err
	}

	fi, err := r.fs.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.Mode().IsRegular()) {
		return "", fmerrors.NewFileNotFoundError(resolved, msgRequestNotFound)
	}

	if err != nil {
		return "", err
	}

	return resolved, nil
}

// LastModifiedTime resolves path and returns its last modification time.
func (r *Resolver) LastModifiedTime(path string) (time.Time, error) {
	fi, err := r.stat(r.ResolveAbsolute(path))
	if err != nil {
		return time.Time{}, err
	}

	return fi.ModTime(), nil
}

// WasModifiedSince resolves path and reports whether it was modified after
// since.
func (r *Resolver) WasModifiedSince(since time.Time, path string) (bool, error) {
	modTime, err := r.LastModifiedTime(path)
	if err != nil {
		return false, err
	}

	return since.Before(modTime), nil
}

// stat returns the file info for an already resolved path, translating a
// missing path into a [*fmerrors.FileNotFoundError].
func (r *Resolver) stat(resolved string) (fs.FileInfo, error) {
	fi, err := r.fs.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmerrors.NewFileNotFoundError(resolved, msgNotFound)
	}

	if err != nil {
		return nil, err
	}

	return fi, nil
}

func statExists(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
