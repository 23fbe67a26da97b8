package emf

import (
	"slices"
	"testing"
)

func TestSurfaceRegistry(t *testing.T) {
	const name = "registry-test"
	var gotW, gotH int
	Register(name, func(w, h int) Surface {
		gotW, gotH = w, h
		return nopSurface{}
	})
	t.Cleanup(func() { Unregister(name) })

	if !slices.Contains(Surfaces(), name) {
		t.Fatalf("Surfaces() = %v, missing %q", Surfaces(), name)
	}
	s, err := NewSurface(name, 64, 32)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if _, ok := s.(nopSurface); !ok {
		t.Errorf("NewSurface() returned %T", s)
	}
	if gotW != 64 || gotH != 32 {
		t.Errorf("factory got %dx%d, want 64x32", gotW, gotH)
	}
}

func TestNewSurfaceUnknown(t *testing.T) {
	if _, err := NewSurface("no-such-surface", 1, 1); err == nil {
		t.Error("NewSurface() for unknown name returned nil error")
	}
}

func TestRegisterPanics(t *testing.T) {
	const name = "registry-dup"
	Register(name, func(int, int) Surface { return nopSurface{} })
	t.Cleanup(func() { Unregister(name) })

	tests := []struct {
		name    string
		factory SurfaceFactory
		regName string
	}{
		{"duplicate", func(int, int) Surface { return nopSurface{} }, name},
		{"nil factory", nil, "registry-nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			Register(tt.regName, tt.factory)
		})
	}
}
