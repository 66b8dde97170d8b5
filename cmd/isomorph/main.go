// Command isomorph compares graphs by color refinement, runs batch and fuzz
// experiments, and maintains a catalog of non-isomorphic graphs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "isomorph:", err)
		stop()
		os.Exit(1)
	}
}
