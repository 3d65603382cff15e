package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/MacroPower/filemonitor/pkg/watch"
)

const flagSince = "since"

type watchEvent watch.Event

func (e watchEvent) Text() string {
	return fmt.Sprintf("%s\t%s", e.ModTime.Format(time.RFC3339Nano), e.Path)
}

// NewWatchCmd returns the watch command.
func NewWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch PATH",
		Short: "Print a line each time a file is modified",
		Long: `Print a line each time a file is modified, until interrupted.

With --since, a modification made after the given time (RFC 3339) is reported
immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			opts := []watch.Option{watch.WithLogger(a.logger)}

			since, err := cc.Flags().GetString(flagSince)
			if err != nil {
				return err
			}

			if since != "" {
				t, err := parseTime(since)
				if err != nil {
					return err
				}

				opts = append(opts, watch.WithSince(t))
			}

			w := watch.New(a.resolver, args[0], opts...)

			return w.Run(cc.Context(), func(ev watch.Event) {
				if err := a.out.Print(watchEvent(ev)); err != nil {
					a.logger.Warn("failed to print event", slog.Any("err", err))
				}
			})
		},
	}

	cmd.Flags().String(flagSince, "", "Report modifications made after this time")

	return cmd
}
