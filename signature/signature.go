package signature

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/katalvlaran/isomorph/refine"
)

// Entry is one distinct signature and its multiplicity.
type Entry struct {
	Signature refine.Signature
	Count     int
}

// Report lists the signatures present on one side but not matched on the
// other, with the unmatched multiplicity. Both slices are in ascending
// signature order.
type Report struct {
	OnlyA []Entry
	OnlyB []Entry
}

// Empty reports whether the two multisets matched exactly.
func (r Report) Empty() bool { return len(r.OnlyA) == 0 && len(r.OnlyB) == 0 }

// newTree returns a multiset keyed by signature with int multiplicities.
func newTree() *redblacktree.Tree {
	return &redblacktree.Tree{
		Comparator: func(a, b interface{}) int {
			return a.(refine.Signature).Compare(b.(refine.Signature))
		},
	}
}

// collect folds the signatures of r into a multiset tree.
func collect(r *refine.Result) *redblacktree.Tree {
	t := newTree()
	for v := 0; v < r.Order(); v++ {
		sig := r.Signature(v)
		count := 0
		if c, found := t.Get(sig); found {
			count = c.(int)
		}
		t.Put(sig, count+1)
	}

	return t
}

// entries drains a multiset tree in ascending key order.
func entries(t *redblacktree.Tree) []Entry {
	out := make([]Entry, 0, t.Size())
	it := t.Iterator()
	for it.Next() {
		out = append(out, Entry{Signature: it.Key().(refine.Signature), Count: it.Value().(int)})
	}

	return out
}

// Multiset returns the distinct signatures of r with their multiplicities,
// in ascending signature order. A nil result yields an empty multiset.
func Multiset(r *refine.Result) []Entry {
	return entries(collect(r))
}

// Compare reports whether a and b hold equal signature multisets.
// Results refined in different modes never compare equal.
// Complexity: O(n log n · L) for signatures of size L.
func Compare(a, b *refine.Result) bool {
	if a.Order() != b.Order() || mode(a) != mode(b) {
		return false
	}

	return Diff(a, b).Empty()
}

// Diff matches the multisets of a and b and returns what remains on each side.
func Diff(a, b *refine.Result) Report {
	ta, tb := collect(a), collect(b)
	var rep Report
	it := ta.Iterator()
	for it.Next() {
		ca := it.Value().(int)
		cb := 0
		if c, found := tb.Get(it.Key()); found {
			cb = c.(int)
		}
		if ca > cb {
			rep.OnlyA = append(rep.OnlyA, Entry{Signature: it.Key().(refine.Signature), Count: ca - cb})
		}
	}
	it = tb.Iterator()
	for it.Next() {
		cb := it.Value().(int)
		ca := 0
		if c, found := ta.Get(it.Key()); found {
			ca = c.(int)
		}
		if cb > ca {
			rep.OnlyB = append(rep.OnlyB, Entry{Signature: it.Key().(refine.Signature), Count: cb - ca})
		}
	}

	return rep
}

// Encode serializes the multiset of r as uvarints:
// mode, entry count, then per entry its multiplicity, level count, and
// per level its length followed by the values.
func Encode(r *refine.Result) []byte {
	es := Multiset(r)
	buf := make([]byte, 0, 16+8*len(es))
	buf = binary.AppendUvarint(buf, uint64(mode(r)))
	buf = binary.AppendUvarint(buf, uint64(len(es)))
	for _, e := range es {
		buf = binary.AppendUvarint(buf, uint64(e.Count))
		buf = binary.AppendUvarint(buf, uint64(len(e.Signature)))
		for _, lvl := range e.Signature {
			buf = binary.AppendUvarint(buf, uint64(len(lvl)))
			for _, x := range lvl {
				buf = binary.AppendUvarint(buf, uint64(x))
			}
		}
	}

	return buf
}

// Fingerprint returns the 8-byte big-endian xxhash digest of Encode(r).
// Equal multisets always share a fingerprint; unequal ones rarely do.
func Fingerprint(r *refine.Result) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), xxhash.Sum64(Encode(r)))
}

func mode(r *refine.Result) refine.Mode {
	if r == nil {
		return refine.ModeCanonicalForm
	}

	return r.Mode
}
