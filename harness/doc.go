// Package harness runs batches of isomorphism decisions.
//
// A Runner pulls Pairs from a PairSource and decides them concurrently
// (bounded by Config.Parallel) with iso.Decide, aggregating a Report:
//
//   - Total, Candidates and Verified give the two headline percentages,
//     topology comparison (signatures matched) and mapping comparison
//     (the canonical mappings verified).
//   - Disagreements counts pairs where the two verdicts differ.
//   - Missed counts known-isomorphic pairs whose signatures differed.
//
// Sources:
//
//   - CorpusSource: A/B pair files of a vflib graph database.
//   - RandomSource: independent G(n, p) pairs.
//   - PermutedSource: a G(n, p) graph and a relabeled copy.
//   - SliceSource: a fixed list.
//
// Known-isomorphic pairs whose mapping does not verify, and unrelated pairs
// whose signatures match, are written to the FailureSink. Counters and
// histograms are registered once per Runner on the Registerer given to
// WithRegisterer; every Report carries a fresh run id.
package harness
