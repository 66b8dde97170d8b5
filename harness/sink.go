package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/isomorph/dot"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/vflib"
)

// FailureSink receives pairs whose mapping did not verify although they
// were expected to, and pairs whose signatures matched although they were
// not expected to.
type FailureSink interface {
	Record(name string, a, b *matrix.Adjacency) error
}

// DirSink writes FAILED_<name>.{A,B}.{dot,vf} into Dir.
type DirSink struct {
	Dir string
}

// Record implements FailureSink.
func (s DirSink) Record(name string, a, b *matrix.Adjacency) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("DirSink: %w", err)
	}
	base := filepath.Join(s.Dir, "FAILED_"+name)
	for _, side := range []struct {
		tag string
		m   *matrix.Adjacency
	}{{"A", a}, {"B", b}} {
		if err := dot.WriteFile(base+"."+side.tag+".dot", side.m, "FAILED_"+name+"_"+side.tag); err != nil {
			return fmt.Errorf("DirSink: %w", err)
		}
		if err := vflib.WriteFile(base+"."+side.tag+".vf", side.m); err != nil {
			return fmt.Errorf("DirSink: %w", err)
		}
	}

	return nil
}
