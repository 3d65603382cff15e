package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MacroPower/filemonitor/pkg/log"
	"github.com/MacroPower/filemonitor/pkg/pathutil"
	"github.com/MacroPower/filemonitor/pkg/version"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

// app is the state shared by all subcommands. It is populated by the root
// command before any subcommand runs.
type app struct {
	resolver *pathutil.Resolver
	out      *printer
	logger   *slog.Logger
}

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	addConfigFlags(cmd)

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cc)
		if err != nil {
			return err
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		logger := slog.New(h)
		slog.SetDefault(logger)

		out, err := newPrinter(cc.OutOrStdout(), cfg.Output)
		if err != nil {
			return err
		}

		resolver, err := pathutil.NewResolver(cfg.BaseDir)
		if err != nil {
			return fmt.Errorf("base directory %q: %w", cfg.BaseDir, err)
		}

		a.out = out
		a.resolver = resolver
		a.logger = logger

		logger.Debug("ready to go", slog.String("base_dir", resolver.BaseDir()))

		return nil
	}

	cmd.AddCommand(NewResolveCmd(a))
	cmd.AddCommand(NewFileCmd(a))
	cmd.AddCommand(NewExistsCmd(a))
	cmd.AddCommand(NewStatCmd(a))
	cmd.AddCommand(NewEnsureCmd(a))
	cmd.AddCommand(NewModifiedSinceCmd(a))
	cmd.AddCommand(NewPrepareCmd(a))
	cmd.AddCommand(NewWatchCmd(a))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
