// Package iso is the entry point of the refinement engine: it re-exports the
// four core operations and combines them into a single decision.
package iso

import (
	"github.com/katalvlaran/isomorph/mapping"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/refine"
	"github.com/katalvlaran/isomorph/signature"
	"github.com/katalvlaran/isomorph/verify"
)

// Refine computes per-vertex signatures of m. See refine.Refine.
func Refine(m *matrix.Adjacency, opts ...refine.Option) (*refine.Result, error) {
	return refine.Refine(m, opts...)
}

// Compare reports whether two results hold equal signature multisets.
// See signature.Compare.
func Compare(a, b *refine.Result) bool {
	return signature.Compare(a, b)
}

// BuildMapping orders the vertices of m canonically. See mapping.Build.
func BuildMapping(r *refine.Result, m *matrix.Adjacency, opts ...mapping.Option) (mapping.Mapping, error) {
	return mapping.Build(r, m, opts...)
}

// Verify checks two graphs cell by cell in canonical order. See verify.Verify.
func Verify(a *matrix.Adjacency, ma mapping.Mapping, b *matrix.Adjacency, mb mapping.Mapping) (verify.Verdict, error) {
	return verify.Verify(a, ma, b, mb)
}
