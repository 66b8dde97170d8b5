package catalog

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/isomorph/iso"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/refine"
	"github.com/katalvlaran/isomorph/signature"
	"github.com/katalvlaran/isomorph/vflib"
)

/***

Catalog database format:

	n (uint16 BE), fingerprint (8 bytes), NUL, NUL, seq (uint32 BE)  => vflib record

All graphs sharing (n, fingerprint) sit under one prefix, so a lookup is a
single prefix scan. seq enumerates the non-isomorphic graphs found under a
prefix in insertion order.

***/

// Sentinel errors.
var (
	// ErrClosed is returned by operations on a closed catalog.
	ErrClosed = errors.New("catalog: closed")

	// ErrNilGraph is returned when a nil matrix is stored or looked up.
	ErrNilGraph = errors.New("catalog: graph is nil")

	// ErrTooLarge is returned for graphs whose order does not fit the key.
	ErrTooLarge = errors.New("catalog: graph order exceeds 65535")

	// ErrCorruptKey is returned when a stored key does not follow the format.
	ErrCorruptKey = errors.New("catalog: malformed key")
)

// Options configures Open.
type Options struct {
	// Path of the badger directory; empty opens an in-memory catalog.
	Path string

	// ReadOnly opens an existing catalog without write access.
	ReadOnly bool

	// Mode is the refinement mode used for fingerprints and decisions.
	// A catalog must always be opened with the mode it was built with.
	Mode refine.Mode

	// Logger receives debug records; nil means slog.Default().
	Logger *slog.Logger
}

// Match is one stored graph that shares the fingerprint of a query.
type Match struct {
	Seq      uint32
	Graph    *matrix.Adjacency
	Decision iso.Decision
}

// Catalog is a badger-backed set of pairwise non-isomorphic graphs.
type Catalog struct {
	db   *badger.DB
	mode refine.Mode
	log  *slog.Logger
}

// Open opens (or creates) a catalog.
func Open(opts Options) (*Catalog, error) {
	if opts.Path == "" && opts.ReadOnly {
		return nil, fmt.Errorf("catalog: Path must be specified for a read-only catalog")
	}

	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false
	if opts.Path == "" {
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", opts.Path, err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Catalog{db: db, mode: opts.Mode, log: log}, nil
}

// Close releases the database. Closing twice is a no-op.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil

	return err
}

// prefix returns n ‖ fingerprint ‖ NUL NUL for m, plus m's refinement.
func (c *Catalog) prefix(ctx context.Context, m *matrix.Adjacency) ([]byte, error) {
	if m == nil {
		return nil, ErrNilGraph
	}
	if m.Order() > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", ErrTooLarge, m.Order())
	}
	r, err := refine.Refine(m, refine.WithMode(c.mode), refine.WithContext(ctx), refine.WithLogger(c.log))
	if err != nil {
		return nil, err
	}
	key := make([]byte, 0, 16)
	key = binary.BigEndian.AppendUint16(key, uint16(m.Order()))
	key = append(key, signature.Fingerprint(r)...)
	key = append(key, 0, 0)

	return key, nil
}

// scan decides m against every graph stored under pfx within txn.
func (c *Catalog) scan(ctx context.Context, txn *badger.Txn, pfx []byte, m *matrix.Adjacency) ([]Match, error) {
	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: true,
		PrefetchSize:   16,
		Prefix:         pfx,
	})
	defer it.Close()

	var out []Match
	for it.Seek(pfx); it.ValidForPrefix(pfx); it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := it.Item()
		key := item.Key()
		if len(key) != len(pfx)+4 || !bytes.HasPrefix(key, pfx) {
			return nil, fmt.Errorf("%w: %x", ErrCorruptKey, key)
		}
		var stored *matrix.Adjacency
		err := item.Value(func(val []byte) error {
			g, err := vflib.Unmarshal(val)
			stored = g
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("catalog: decode %x: %w", key, err)
		}
		d, err := iso.Decide(ctx, m, stored,
			iso.WithRefineOptions(refine.WithMode(c.mode)),
			iso.WithLogger(c.log))
		if err != nil {
			return nil, err
		}
		out = append(out, Match{
			Seq:      binary.BigEndian.Uint32(key[len(pfx):]),
			Graph:    stored,
			Decision: d,
		})
	}

	return out, nil
}

// Lookup returns every stored graph sharing m's fingerprint, each with its
// Decision against m. An empty result means m is certainly new.
func (c *Catalog) Lookup(ctx context.Context, m *matrix.Adjacency) ([]Match, error) {
	if c.db == nil {
		return nil, ErrClosed
	}
	pfx, err := c.prefix(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("Lookup: %w", err)
	}
	var out []Match
	err = c.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = c.scan(ctx, txn, pfx, m)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Lookup: %w", err)
	}

	return out, nil
}

// TryAdd stores m unless a stored graph is verified isomorphic to it.
// Returns true when m was added.
func (c *Catalog) TryAdd(ctx context.Context, m *matrix.Adjacency) (bool, error) {
	if c.db == nil {
		return false, ErrClosed
	}
	pfx, err := c.prefix(ctx, m)
	if err != nil {
		return false, fmt.Errorf("TryAdd: %w", err)
	}
	val, err := vflib.Marshal(m)
	if err != nil {
		return false, fmt.Errorf("TryAdd: %w", err)
	}

	added := false
	err = c.db.Update(func(txn *badger.Txn) error {
		matches, err := c.scan(ctx, txn, pfx, m)
		if err != nil {
			return err
		}
		for _, mt := range matches {
			if mt.Decision.Outcome == iso.Isomorphic {
				c.log.Debug("catalog hit", "n", m.Order(), "seq", mt.Seq)
				return nil
			}
		}
		key := binary.BigEndian.AppendUint32(append([]byte(nil), pfx...), uint32(len(matches)))
		if err = txn.Set(key, val); err != nil {
			return err
		}
		added = true
		c.log.Debug("catalog add", "n", m.Order(), "seq", len(matches))

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("TryAdd: %w", err)
	}

	return added, nil
}

// Count returns the number of stored graphs.
func (c *Catalog) Count() (int, error) {
	if c.db == nil {
		return 0, ErrClosed
	}
	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})

	return n, err
}
