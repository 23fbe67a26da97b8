package recording

import (
	"testing"

	"github.com/gogpu/emf"
)

func TestResourcePoolClonesPaths(t *testing.T) {
	pool := NewResourcePool()
	p := emf.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)

	ref := pool.AddPath(p)
	p.LineTo(2, 2)

	got := pool.GetPath(ref)
	if got == p {
		t.Fatal("AddPath stored the caller's path")
	}
	if got.Len() != 2 {
		t.Errorf("pooled path has %d elements, want 2", got.Len())
	}
}

func TestResourcePoolRefs(t *testing.T) {
	pool := NewResourcePool()
	r0 := pool.AddPath(emf.NewPath())
	r1 := pool.AddPath(emf.NewPath())
	if r0 != 0 || r1 != 1 {
		t.Errorf("refs = %d, %d, want 0, 1", r0, r1)
	}
	if pool.PathCount() != 2 {
		t.Errorf("PathCount() = %d, want 2", pool.PathCount())
	}
	if pool.GetPath(PathRef(InvalidRef)) != nil {
		t.Error("GetPath(InvalidRef) != nil")
	}
	if PathRef(InvalidRef).IsValid() || !r1.IsValid() {
		t.Error("IsValid() mismatch")
	}

	pool.Clear()
	if pool.PathCount() != 0 || pool.GetPath(r0) != nil {
		t.Error("Clear() left paths behind")
	}
}
