package cli

import (
	"github.com/spf13/cobra"

	"github.com/MacroPower/filemonitor/pkg/pathutil"
)

const (
	flagReference   = "reference"
	flagNoReference = "no-reference"
)

type resolveResult struct {
	Reference *string `json:"reference" yaml:"reference"`
	Candidate *string `json:"candidate" yaml:"candidate"`
	Resolved  *string `json:"resolved"  yaml:"resolved"`
}

func (r resolveResult) Text() string {
	if r.Resolved == nil {
		return ""
	}

	return *r.Resolved
}

// NewResolveCmd returns the resolve command.
func NewResolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [EXPR]",
		Short: "Resolve a path expression to an absolute path",
		Long: `Resolve a path expression to an absolute path.

EXPR is combined with the reference path, which defaults to the base
directory. The tokens [RutaActual] and [DS] are expanded. Omitting EXPR
resolves the reference path on its own.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			reference := a.resolver.Reference()

			noReference, err := cc.Flags().GetBool(flagNoReference)
			if err != nil {
				return err
			}

			switch {
			case noReference:
				reference = pathutil.NoPath
			case cc.Flags().Changed(flagReference):
				ref, err := cc.Flags().GetString(flagReference)
				if err != nil {
					return err
				}

				reference = pathutil.PathOf(ref)
			}

			candidate := pathutil.NoPath
			if len(args) == 1 {
				candidate = pathutil.PathOf(args[0])
			}

			resolved := a.resolver.ResolveAbsoluteFrom(reference, candidate)

			return a.out.Print(resolveResult{
				Reference: optional(reference),
				Candidate: optional(candidate),
				Resolved:  optional(resolved),
			})
		},
	}

	cmd.Flags().String(flagReference, "", "Reference path to resolve EXPR against")
	cmd.Flags().Bool(flagNoReference, false, "Resolve without a reference path")
	cmd.MarkFlagsMutuallyExclusive(flagReference, flagNoReference)

	return cmd
}

func optional(p pathutil.Path) *string {
	s, ok := p.Get()
	if !ok {
		return nil
	}

	return &s
}
