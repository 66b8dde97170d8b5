// Package graphtext parses and prints small graphs in a compact edge-run
// notation, e.g. "6: 0-1-2-0, 3-4-5-3" for two disjoint triangles.
//
// Grammar
//
//	expr := order ":" [ run { "," run } ]
//	run  := vertex { "-" vertex }
//
// A run of k vertices contributes the k-1 edges between consecutive
// vertices. Repeated edges are idempotent; self-loops are rejected.
package graphtext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/katalvlaran/isomorph/matrix"
)

// Sentinel errors for graph expressions.
var (
	// ErrSyntax wraps a grammar error reported by the parser.
	ErrSyntax = errors.New("graphtext: syntax error")

	// ErrNilGraph indicates that a nil matrix was passed to Format.
	ErrNilGraph = errors.New("graphtext: graph is nil")
)

// Expr is the parse tree of a graph expression.
type Expr struct {
	Order int    `parser:"@Int \":\""`
	Runs  []*Run `parser:"( @@ ( \",\" @@ )* )?"`
}

// Run is a chain of vertices joined by edges.
type Run struct {
	Start int   `parser:"@Int"`
	Next  []int `parser:"( \"-\" @Int )*"`
}

var parser = participle.MustBuild[Expr]()

// ParseExpr returns the parse tree of s without building a matrix.
func ParseExpr(s string) (*Expr, error) {
	expr, err := parser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return expr, nil
}

// Parse builds the adjacency matrix described by s.
func Parse(s string) (*matrix.Adjacency, error) {
	expr, err := ParseExpr(s)
	if err != nil {
		return nil, err
	}

	return expr.Build()
}

// Build materializes the expression as an adjacency matrix.
func (e *Expr) Build() (*matrix.Adjacency, error) {
	m, err := matrix.NewAdjacency(e.Order)
	if err != nil {
		return nil, fmt.Errorf("graphtext: %w", err)
	}
	for _, run := range e.Runs {
		prev := run.Start
		if prev < 0 || prev >= e.Order {
			return nil, fmt.Errorf("graphtext: vertex %d: %w", prev, matrix.ErrOutOfRange)
		}
		for _, v := range run.Next {
			if err := m.AddEdge(prev, v); err != nil {
				return nil, fmt.Errorf("graphtext: edge %d-%d: %w", prev, v, err)
			}
			prev = v
		}
	}

	return m, nil
}

// Format prints m with one run per edge, edges in ascending order.
// Parse(Format(m)) reproduces m.
func Format(m *matrix.Adjacency) (string, error) {
	if m == nil {
		return "", ErrNilGraph
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(m.Order()))
	sb.WriteByte(':')
	for k, e := range m.Edges() {
		if k > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(e[0]))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(e[1]))
	}

	return sb.String(), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *matrix.Adjacency {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}
