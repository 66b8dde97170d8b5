package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isomorph/iso"
	"github.com/katalvlaran/isomorph/mapping"
	"github.com/katalvlaran/isomorph/refine"
	"github.com/katalvlaran/isomorph/signature"
)

func newCompareCmd(g *globalFlags) *cobra.Command {
	var (
		text   bool
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Decide whether two graphs are isomorphic",
		Example: `  isomorph compare a.vf b.vf
  isomorph compare --text "4: 0-1-2-3" "4: 3-1-0-2"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.logger(cmd)
			if err != nil {
				return err
			}
			mode, err := g.refineMode()
			if err != nil {
				return err
			}
			a, err := loadArg(args[0], text)
			if err != nil {
				return fmt.Errorf("A: %w", err)
			}
			b, err := loadArg(args[1], text)
			if err != nil {
				return fmt.Errorf("B: %w", err)
			}

			var mOpts []mapping.Option
			if strict {
				mOpts = append(mOpts, mapping.WithStrictOrder())
			}
			d, err := iso.Decide(cmd.Context(), a, b,
				iso.WithRefineOptions(refine.WithMode(mode), refine.WithWorkers(g.workers)),
				iso.WithMappingOptions(mOpts...),
				iso.WithLogger(log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "outcome:   %s\n", d.Outcome)
			fmt.Fprintf(out, "candidate: %t\n", d.Candidate)
			fmt.Fprintf(out, "verified:  %t\n", d.Verified)
			switch {
			case d.Verdict.OrderMismatch:
				fmt.Fprintf(out, "orders:    %d vs %d\n", a.Order(), b.Order())
			case d.Witness != nil:
				fmt.Fprintf(out, "witness:   %v\n", d.Witness)
			case d.Verdict.Mismatch != nil:
				fmt.Fprintf(out, "mismatch:  %s\n", d.Verdict.Mismatch)
			}
			if !d.Candidate && d.ResultA != nil {
				rep := signature.Diff(d.ResultA, d.ResultB)
				for _, e := range rep.OnlyA {
					fmt.Fprintf(out, "only A:    %v x%d\n", e.Signature, e.Count)
				}
				for _, e := range rep.OnlyB {
					fmt.Fprintf(out, "only B:    %v x%d\n", e.Signature, e.Count)
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "arguments are graph expressions instead of files")
	cmd.Flags().BoolVar(&strict, "strict", false, "report ties as inconclusive instead of individualizing")

	return cmd
}
