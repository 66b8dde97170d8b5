// Package catalog keeps a persistent set of pairwise non-isomorphic graphs.
//
// Graphs are bucketed by order and signature fingerprint, so equal
// fingerprints are a necessary condition for a stored graph to match. For
// each stored graph in the bucket, TryAdd and Lookup call iso.Decide. A
// catalog must be reopened with the refinement mode it was built with,
// since fingerprints differ between modes.
//
//	c, _ := catalog.Open(catalog.Options{Path: "graphs.db"})
//	defer c.Close()
//	added, _ := c.TryAdd(ctx, m)
package catalog
