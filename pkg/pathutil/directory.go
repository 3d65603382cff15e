package pathutil

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/MacroPower/filemonitor/pkg/fmerrors"
)

// PrepareDirectory resolves path and creates each missing directory along it,
// one level at a time, from the root down. The walk stops at the first
// element that contains a ".", which is taken to be a file name; that element
// and anything below it are not created.
//
// Directories that already exist are left alone, so concurrent calls with the
// same or overlapping paths do not fail. A blank path fails with
// [fmerrors.ErrEmptyPath].
func (r *Resolver) PrepareDirectory(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmerrors.ErrEmptyPath
	}

	segments := strings.Split(r.ResolveAbsolute(path), separator)

	prefix := segments[0]
	for _, segment := range segments[1:] {
		if segment == "" {
			continue
		}

		prefix += separator + segment
		if strings.Contains(segment, ".") {
			break
		}

		if err := r.mkdir(prefix); err != nil {
			return err
		}
	}

	return nil
}

func (r *Resolver) mkdir(path string) error {
	if fi, err := r.fs.Stat(path); err == nil && fi.IsDir() {
		return nil
	}

	// Another caller may create the directory between Stat and Mkdir.
	err := r.fs.Mkdir(path, r.perm)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}

	return err
}
