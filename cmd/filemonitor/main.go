package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MacroPower/filemonitor/internal/cli"
)

const (
	cmdName = "filemonitor"

	shortDesc = "Resolve tokenized path expressions and check the files they name."
	longDesc  = `Resolve tokenized path expressions and check the files they name.

Path expressions may contain placeholder tokens, which are expanded before
the path is made absolute:

  [RutaActual]  the reference directory (by default, the base directory)
  [DS]          the directory separator of this system
  [Auto]        the base directory; alone, it names a file in it
  [FileName]    the requested file name

Relative paths are resolved against the base directory, which defaults to
the directory holding this executable.
`
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	err := cmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
