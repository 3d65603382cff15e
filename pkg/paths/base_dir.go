package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// BaseDir returns the directory that holds the running executable. If that
// cannot be determined, the current working directory is returned instead.
func BaseDir() (string, error) {
	dir, err := ExecutableDir()
	if err == nil {
		return dir, nil
	}

	wd, wdErr := os.Getwd()
	if wdErr != nil {
		return "", fmt.Errorf("get working directory: %w (executable: %w)", wdErr, err)
	}

	return wd, nil
}

// ExecutableDir returns the directory of the running executable, with
// symbolic links resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get executable path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}

	return filepath.Dir(resolved), nil
}
