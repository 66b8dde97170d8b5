// Package dot renders adjacency matrices as Graphviz DOT through gonum's
// encoding/dot, and reads them back.
package dot

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/isomorph/matrix"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// Sentinel errors for DOT conversion.
var (
	// ErrNilGraph indicates that a nil matrix was passed.
	ErrNilGraph = errors.New("dot: graph is nil")

	// ErrBadNodeID indicates a DOT node whose ID is not a vertex index in [0, n).
	ErrBadNodeID = errors.New("dot: node id is not a vertex index")
)

// ToGraph builds a gonum undirected graph with nodes 0..n-1 and one edge per
// set cell of the lower triangle.
func ToGraph(m *matrix.Adjacency) (*simple.UndirectedGraph, error) {
	if m == nil {
		return nil, ErrNilGraph
	}
	g := simple.NewUndirectedGraph()
	n := m.Order()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if m.Adjacent(i, j) {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	return g, nil
}

// Marshal encodes m as an undirected DOT graph called name.
func Marshal(m *matrix.Adjacency, name string) ([]byte, error) {
	g, err := ToGraph(m)
	if err != nil {
		return nil, err
	}

	return dot.Marshal(g, name, "", "\t")
}

// WriteFile encodes m to path as DOT.
func WriteFile(path string, m *matrix.Adjacency, name string) error {
	b, err := Marshal(m, name)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o644)
}

// Unmarshal decodes an undirected DOT graph whose node IDs are the integers
// 0..n-1 into an adjacency matrix.
func Unmarshal(data []byte) (*matrix.Adjacency, error) {
	dst := &idGraph{UndirectedGraph: simple.NewUndirectedGraph()}
	if err := dot.Unmarshal(data, dst); err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}

	n := len(dst.nodes)
	index := make(map[int64]int, n)
	seen := make([]bool, n)
	for _, nd := range dst.nodes {
		v, err := strconv.Atoi(nd.dotID)
		if err != nil || v < 0 || v >= n || seen[v] {
			return nil, fmt.Errorf("%w: %q", ErrBadNodeID, nd.dotID)
		}
		seen[v] = true
		index[nd.id] = v
	}
	m, err := matrix.NewAdjacency(n)
	if err != nil {
		return nil, err
	}
	edges := dst.Edges()
	for edges.Next() {
		e := edges.Edge()
		if err := m.AddEdge(index[e.From().ID()], index[e.To().ID()]); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ReadFile decodes the DOT file at path.
func ReadFile(path string) (*matrix.Adjacency, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Unmarshal(b)
}

// idGraph records the DOT ID of every node the decoder creates.
type idGraph struct {
	*simple.UndirectedGraph
	nodes []*idNode
}

// NewNode returns a node able to receive its DOT ID.
func (g *idGraph) NewNode() graph.Node {
	nd := &idNode{id: g.UndirectedGraph.NewNode().ID()}
	g.nodes = append(g.nodes, nd)

	return nd
}

type idNode struct {
	id    int64
	dotID string
}

func (n *idNode) ID() int64 { return n.id }

// SetDOTID implements dot.DOTIDSetter.
func (n *idNode) SetDOTID(id string) { n.dotID = id }
