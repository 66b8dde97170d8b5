package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isomorph/harness"
)

// runFlags override Config fields when set on the command line.
type runFlags struct {
	parallel   int
	strict     bool
	failureDir string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.parallel, "parallel", 0, "pairs decided concurrently (0 keeps the config value)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "report ties as inconclusive instead of individualizing")
	cmd.Flags().StringVar(&f.failureDir, "failure-dir", "", "write failed pairs as DOT and vflib files here")
}

// apply merges global and run flags into cfg. Only flags the user changed
// override file values.
func (f *runFlags) apply(cmd *cobra.Command, g *globalFlags, cfg *harness.Config) {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = g.mode
	}
	if flags.Changed("workers") {
		cfg.Workers = g.workers
	}
	if f.parallel > 0 {
		cfg.Parallel = f.parallel
	}
	if f.strict {
		cfg.Strict = true
	}
	if f.failureDir != "" {
		cfg.FailureDir = f.failureDir
	}
}

// run executes src under cfg and prints the summary.
func run(cmd *cobra.Command, g *globalFlags, cfg harness.Config, src harness.PairSource) error {
	log, err := g.logger(cmd)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	stop := g.serveMetrics(reg, log)
	defer stop()

	r, err := harness.NewRunner(cfg, harness.WithLogger(log), harness.WithRegisterer(reg))
	if err != nil {
		return err
	}
	rep, err := r.Run(cmd.Context(), src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d pairs in %s\n", rep.RunID, rep.Total, rep.Elapsed)
	fmt.Fprintf(out, "topology comparison: %.1f%% candidates\n", rep.CandidatePercent())
	fmt.Fprintf(out, "mapping comparison:  %.1f%% verified\n", rep.VerifiedPercent())
	fmt.Fprintf(out, "disagreements %d, inconclusive %d, missed %d\n", rep.Disagreements, rep.Inconclusive, rep.Missed)
	if rep.Missed > 0 {
		return fmt.Errorf("%d known-isomorphic pairs had differing signatures", rep.Missed)
	}

	return nil
}

func newBatchCmd(g *globalFlags) *cobra.Command {
	var (
		configPath string
		rf         runFlags
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Decide every pair of a vflib corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := harness.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = harness.LoadConfig(configPath); err != nil {
					return err
				}
			}
			rf.apply(cmd, g, &cfg)

			return run(cmd, g, cfg, harness.NewCorpusSource(cfg.Corpus))
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration")
	rf.register(cmd)

	return cmd
}

func newFuzzCmd(g *globalFlags) *cobra.Command {
	var (
		configPath string
		permuted   bool
		iterations int
		seed       int64
		rf         runFlags
	)
	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Decide random graph pairs",
		Long: `Decide random graph pairs.

Without --permuted, pairs are independent random graphs and any detected
isomorphism is reported. With --permuted, each pair is a graph and a
relabeled copy, and differing signatures are a failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := harness.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = harness.LoadConfig(configPath); err != nil {
					return err
				}
			}
			rf.apply(cmd, g, &cfg)
			if cmd.Flags().Changed("iterations") {
				cfg.Random.Iterations = iterations
			}
			if cmd.Flags().Changed("seed") {
				cfg.Random.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var src harness.PairSource = harness.NewRandomSource(cfg.Random)
			if permuted {
				src = harness.NewPermutedSource(cfg.Random)
			}

			return run(cmd, g, cfg, src)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration")
	cmd.Flags().BoolVar(&permuted, "permuted", false, "pair each graph with a relabeled copy")
	cmd.Flags().IntVar(&iterations, "iterations", 1, "number of pairs")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	rf.register(cmd)

	return cmd
}
