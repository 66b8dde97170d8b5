package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isomorph/catalog"
)

func newCatalogCmd(g *globalFlags) *cobra.Command {
	var (
		dbPath string
		text   bool
	)
	open := func(cmd *cobra.Command, readOnly bool) (*catalog.Catalog, error) {
		log, err := g.logger(cmd)
		if err != nil {
			return nil, err
		}
		mode, err := g.refineMode()
		if err != nil {
			return nil, err
		}

		return catalog.Open(catalog.Options{Path: dbPath, ReadOnly: readOnly, Mode: mode, Logger: log})
	}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Maintain a store of pairwise non-isomorphic graphs",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "catalog directory")
	cmd.PersistentFlags().BoolVar(&text, "text", false, "arguments are graph expressions instead of files")
	_ = cmd.MarkPersistentFlagRequired("db")

	add := &cobra.Command{
		Use:   "add GRAPH...",
		Short: "Add graphs that are not yet in the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd, false)
			if err != nil {
				return err
			}
			defer c.Close()
			out := cmd.OutOrStdout()
			for _, arg := range args {
				m, err := loadArg(arg, text)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				added, err := c.TryAdd(cmd.Context(), m)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				status := "present"
				if added {
					status = "added"
				}
				fmt.Fprintf(out, "%s\t%s\n", status, arg)
			}
			n, err := c.Count()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d graphs stored\n", n)

			return nil
		},
	}

	lookup := &cobra.Command{
		Use:   "lookup GRAPH",
		Short: "List stored graphs sharing a graph's fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd, true)
			if err != nil {
				return err
			}
			defer c.Close()
			m, err := loadArg(args[0], text)
			if err != nil {
				return err
			}
			matches, err := c.Lookup(cmd.Context(), m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "no stored graph shares this fingerprint")
				return nil
			}
			for _, mt := range matches {
				fmt.Fprintf(out, "seq %d\t%s\n", mt.Seq, mt.Decision.Outcome)
			}

			return nil
		},
	}
	cmd.AddCommand(add, lookup)

	return cmd
}
