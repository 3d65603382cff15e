package cli

import (
	"github.com/spf13/cobra"
)

const flagMustExist = "must-exist"

type fileResult struct {
	Expression string `json:"expression" yaml:"expression"`
	FileName   string `json:"fileName"   yaml:"fileName"`
	Path       string `json:"path"       yaml:"path"`
}

func (r fileResult) Text() string {
	return r.Path
}

// NewFileCmd returns the file command.
func NewFileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file EXPR NAME",
		Short: "Resolve the path of a named file",
		Long: `Resolve the path of a named file.

The tokens [FileName] and [Auto] in EXPR are expanded in addition to those
understood by resolve. An EXPR of [Auto] alone places NAME in the base
directory.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			mustExist, err := cc.Flags().GetBool(flagMustExist)
			if err != nil {
				return err
			}

			resolve := a.resolver.ResolveFilePath
			if mustExist {
				resolve = a.resolver.ResolveExistingFilePath
			}

			p, err := resolve(args[0], args[1])
			if err != nil {
				return err
			}

			return a.out.Print(fileResult{Expression: args[0], FileName: args[1], Path: p})
		},
	}

	cmd.Flags().Bool(flagMustExist, false, "Fail unless the resolved path is an existing file")

	return cmd
}
