package cli

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const flagJobs = "jobs"

type prepareResult struct {
	Paths []string `json:"paths" yaml:"paths"`
}

func (r prepareResult) Text() string {
	return strings.Join(r.Paths, "\n")
}

// NewPrepareCmd returns the prepare command.
func NewPrepareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare PATH...",
		Short: "Create the directories leading to each path",
		Long: `Create the directories leading to each path.

Directories are created one level at a time. The first path element that
contains a "." is taken to be a file name, and neither it nor anything below
it is created. Existing directories are left alone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			jobs, err := cc.Flags().GetInt(flagJobs)
			if err != nil {
				return err
			}

			// Per-path failures are collected in errs so that all of them are
			// reported; the group itself only fails when ctx is cancelled.
			errs := make([]error, len(args))

			g, ctx := errgroup.WithContext(cc.Context())
			g.SetLimit(max(jobs, 1))

			for i, p := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}

					a.logger.Debug("preparing directory", slog.String("path", p))

					if err := a.resolver.PrepareDirectory(p); err != nil {
						errs[i] = fmt.Errorf("%s: %w", p, err)
					}

					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			var merr error

			resolved := make([]string, 0, len(args))
			for i, p := range args {
				if errs[i] != nil {
					merr = multierror.Append(merr, errs[i])

					continue
				}

				resolved = append(resolved, a.resolver.ResolveAbsolute(p))
			}

			if merr != nil {
				return merr
			}

			return a.out.Print(prepareResult{Paths: resolved})
		},
	}

	cmd.Flags().Int(flagJobs, runtime.GOMAXPROCS(0), "Number of paths to prepare concurrently")

	return cmd
}
