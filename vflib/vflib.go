// Package vflib reads and writes graphs in the binary format of the VF
// graph database: little-endian 16-bit words holding the vertex count, then
// for each vertex its edge count followed by that many destination ids.
package vflib

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/isomorph/matrix"
)

// Sentinel errors for decoding and encoding.
var (
	// ErrTruncated indicates that the input ended inside a record.
	ErrTruncated = errors.New("vflib: truncated input")

	// ErrVertexOutOfRange indicates a destination id >= vertex count.
	ErrVertexOutOfRange = errors.New("vflib: destination vertex out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("vflib: self-loop in input")

	// ErrTooLarge indicates a graph that does not fit 16-bit ids.
	ErrTooLarge = errors.New("vflib: graph too large for 16-bit format")

	// ErrNilGraph indicates that a nil matrix was passed to the writer.
	ErrNilGraph = errors.New("vflib: graph is nil")
)

// MaxOrder is the largest vertex count the format can address.
const MaxOrder = matrix.MaxOrder

// Read decodes one graph from r. Every edge is recorded symmetrically, so a
// file that lists an edge from both endpoints and one that lists it once
// decode to the same matrix. Bytes after the last record are not consumed
// beyond the reader's buffer.
//
// The matrix is allocated only after every record has been read, so a
// truncated input fails with ErrTruncated whatever its header claims.
func Read(r io.Reader) (*matrix.Adjacency, error) {
	br := bufio.NewReader(r)
	n, err := readWord(br, "vertex count")
	if err != nil {
		return nil, err
	}
	var edges [][2]int
	for v := 0; v < int(n); v++ {
		deg, err := readWord(br, fmt.Sprintf("edge count of %d", v))
		if err != nil {
			return nil, err
		}
		for k := 0; k < int(deg); k++ {
			dest, err := readWord(br, fmt.Sprintf("edge %d of %d", k, v))
			if err != nil {
				return nil, err
			}
			switch {
			case int(dest) >= int(n):
				return nil, fmt.Errorf("%w: %d -> %d (n=%d)", ErrVertexOutOfRange, v, dest, n)
			case int(dest) == v:
				return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, v)
			}
			edges = append(edges, [2]int{v, int(dest)})
		}
	}

	return matrix.FromEdges(int(n), edges)
}

// ReadFile decodes the graph stored at path.
func ReadFile(path string) (*matrix.Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Unmarshal decodes a graph from an in-memory record.
func Unmarshal(b []byte) (*matrix.Adjacency, error) {
	return Read(bytes.NewReader(b))
}

// Write encodes m to w, listing each undirected edge once from its lower
// endpoint to its higher one.
func Write(w io.Writer, m *matrix.Adjacency) error {
	b, err := Marshal(m)
	if err != nil {
		return err
	}
	_, err = w.Write(b)

	return err
}

// Marshal encodes m into a new byte slice.
func Marshal(m *matrix.Adjacency) ([]byte, error) {
	if m == nil {
		return nil, ErrNilGraph
	}
	n := m.Order()
	if n > MaxOrder {
		return nil, fmt.Errorf("%w: %d vertices", ErrTooLarge, n)
	}
	buf := make([]byte, 0, 2*(1+n+m.EdgeCount()))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(n))
	for v := 0; v < n; v++ {
		up := make([]uint16, 0, 8)
		for u := v + 1; u < n; u++ {
			if m.Adjacent(v, u) {
				up = append(up, uint16(u))
			}
		}
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(up)))
		for _, u := range up {
			buf = binary.LittleEndian.AppendUint16(buf, u)
		}
	}

	return buf, nil
}

// WriteFile encodes m to path, creating or truncating it.
func WriteFile(path string, m *matrix.Adjacency) error {
	b, err := Marshal(m)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o644)
}

func readWord(r io.Reader, what string) (uint16, error) {
	var w uint16
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: reading %s", ErrTruncated, what)
		}
		return 0, err
	}

	return w, nil
}
