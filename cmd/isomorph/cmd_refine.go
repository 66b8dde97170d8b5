package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isomorph/refine"
	"github.com/katalvlaran/isomorph/signature"
)

func newRefineCmd(g *globalFlags) *cobra.Command {
	var text bool
	cmd := &cobra.Command{
		Use:   "refine GRAPH",
		Short: "Print per-vertex signatures and symmetry classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.logger(cmd)
			if err != nil {
				return err
			}
			mode, err := g.refineMode()
			if err != nil {
				return err
			}
			m, err := loadArg(args[0], text)
			if err != nil {
				return err
			}
			r, err := refine.Refine(m,
				refine.WithMode(mode),
				refine.WithWorkers(g.workers),
				refine.WithContext(cmd.Context()),
				refine.WithLogger(log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode %s, %d vertices, %d rounds, fingerprint %x\n",
				r.Mode, r.Order(), r.Rounds, signature.Fingerprint(r))
			for v := 0; v < r.Order(); v++ {
				fmt.Fprintf(out, "%d\tdeg %d\t%v\n", v, r.Degrees[v], r.Signature(v))
			}
			for _, c := range r.Classes() {
				fmt.Fprintf(out, "class %v\n", c)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "argument is a graph expression instead of a file")

	return cmd
}
