package fmerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/filemonitor/pkg/fmerrors"
)

func TestFileNotFoundError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("check: %w", fmerrors.NewFileNotFoundError("/a/b.txt", "file does not exist"))

	require.ErrorIs(t, err, fmerrors.ErrFileNotFound)
	assert.Equal(t, "check: file does not exist: /a/b.txt", err.Error())

	var fnf *fmerrors.FileNotFoundError
	require.ErrorAs(t, err, &fnf)
	assert.Equal(t, "/a/b.txt", fnf.Path)
}

func TestFileNotFoundErrorDefaultMessage(t *testing.T) {
	t.Parallel()

	err := fmerrors.NewFileNotFoundError("/x", "")
	assert.Equal(t, "file not found: /x", err.Error())
}

func TestEmptyPathIsInvalidPath(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(fmerrors.ErrEmptyPath, fmerrors.ErrInvalidPath))
}
