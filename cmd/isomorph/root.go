package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isomorph/dot"
	"github.com/katalvlaran/isomorph/graphtext"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/refine"
	"github.com/katalvlaran/isomorph/vflib"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	mode        string
	workers     int
	logLevel    string
	metricsAddr string
}

func (g *globalFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}

func (g *globalFlags) refineMode() (refine.Mode, error) {
	return refine.ParseMode(g.mode)
}

// serveMetrics exposes reg on addr until the returned stop function runs.
// An empty addr serves nothing.
func (g *globalFlags) serveMetrics(reg *prometheus.Registry, log *slog.Logger) func() {
	if g.metricsAddr == "" {
		return func() {}
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: g.metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "addr", g.metricsAddr, "err", err)
		}
	}()
	log.Info("serving metrics", "addr", g.metricsAddr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "isomorph",
		Short:         "Heuristic graph isomorphism by color refinement",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.mode, "mode", refine.ModeCanonicalForm.String(), "refinement mode: canonical or weightmap")
	pf.IntVar(&g.workers, "workers", 1, "parallel BFS workers per refinement")
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&g.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during batch and fuzz runs")

	root.AddCommand(
		newCompareCmd(g),
		newRefineCmd(g),
		newBatchCmd(g),
		newFuzzCmd(g),
		newCatalogCmd(g),
	)

	return root
}

// loadGraph reads a graph file, choosing the codec by extension:
// .dot/.gv for Graphviz, .txt/.graph for graph expressions, vflib otherwise.
func loadGraph(path string) (*matrix.Adjacency, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return dot.ReadFile(path)
	case ".txt", ".graph":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return graphtext.Parse(strings.TrimSpace(string(data)))
	default:
		return vflib.ReadFile(path)
	}
}

// loadArg resolves a positional argument as a graph expression when text is
// set, as a file path otherwise.
func loadArg(arg string, text bool) (*matrix.Adjacency, error) {
	if text {
		return graphtext.Parse(arg)
	}

	return loadGraph(arg)
}
