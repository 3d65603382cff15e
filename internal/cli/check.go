package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MacroPower/filemonitor/pkg/fmerrors"
)

const flagStrict = "strict"

type existsResult struct {
	Path   string `json:"path"   yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}

func (r existsResult) Text() string {
	return strconv.FormatBool(r.Exists)
}

type statResult struct {
	ModTime     time.Time `json:"modTime"     yaml:"modTime"`
	Path        string    `json:"path"        yaml:"path"`
	IsDirectory bool      `json:"isDirectory" yaml:"isDirectory"`
	IsFile      bool      `json:"isFile"      yaml:"isFile"`
}

func (r statResult) Text() string {
	return fmt.Sprintf("%s\tdirectory=%t\tfile=%t\tmodified=%s",
		r.Path, r.IsDirectory, r.IsFile, r.ModTime.Format(time.RFC3339Nano))
}

type pathResult struct {
	Path string `json:"path" yaml:"path"`
}

func (r pathResult) Text() string {
	return r.Path
}

type modifiedResult struct {
	Since    time.Time `json:"since"    yaml:"since"`
	Path     string    `json:"path"     yaml:"path"`
	Modified bool      `json:"modified" yaml:"modified"`
}

func (r modifiedResult) Text() string {
	return strconv.FormatBool(r.Modified)
}

// NewExistsCmd returns the exists command.
func NewExistsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists PATH",
		Short: "Report whether a path exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			strict, err := cc.Flags().GetBool(flagStrict)
			if err != nil {
				return err
			}

			resolved := a.resolver.ResolveAbsolute(args[0])

			exists, err := a.resolver.Exists(args[0])
			if err != nil {
				return err
			}

			if strict && !exists {
				return fmerrors.NewFileNotFoundError(resolved, "path does not exist")
			}

			return a.out.Print(existsResult{Path: resolved, Exists: exists})
		},
	}

	cmd.Flags().Bool(flagStrict, false, "Fail if the path does not exist")

	return cmd
}

// NewStatCmd returns the stat command.
func NewStatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat PATH",
		Short: "Show the type and modification time of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			modTime, err := a.resolver.LastModifiedTime(args[0])
			if err != nil {
				return err
			}

			isDir, err := a.resolver.IsDirectory(args[0])
			if err != nil {
				return err
			}

			isFile, err := a.resolver.IsFile(args[0])
			if err != nil {
				return err
			}

			return a.out.Print(statResult{
				Path:        a.resolver.ResolveAbsolute(args[0]),
				IsDirectory: isDir,
				IsFile:      isFile,
				ModTime:     modTime.UTC(),
			})
		},
	}
}

// NewEnsureCmd returns the ensure command.
func NewEnsureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure PATH",
		Short: "Fail unless a path exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.resolver.EnsureFileExists(args[0]); err != nil {
				return err
			}

			return a.out.Print(pathResult{Path: a.resolver.ResolveAbsolute(args[0])})
		},
	}
}

// NewModifiedSinceCmd returns the modified-since command.
func NewModifiedSinceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "modified-since TIME PATH",
		Short: "Report whether a path was modified after TIME (RFC 3339)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			since, err := parseTime(args[0])
			if err != nil {
				return err
			}

			modified, err := a.resolver.WasModifiedSince(since, args[1])
			if err != nil {
				return err
			}

			return a.out.Print(modifiedResult{
				Path:     a.resolver.ResolveAbsolute(args[1]),
				Since:    since,
				Modified: modified,
			})
		},
	}
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q: %w", fmerrors.ErrInvalidArguments, s, err)
	}

	return t, nil
}
