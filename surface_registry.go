package emf

import (
	"fmt"
	"sort"
	"sync"
)

// SurfaceFactory creates a surface of the given device size.
type SurfaceFactory func(width, height int) Surface

var (
	registryMu sync.RWMutex
	surfaces   = make(map[string]SurfaceFactory)
)

// Register registers a surface factory with the given name.
// This is typically called from init() in surface packages:
//
//	func init() {
//	    emf.Register("raster", func(w, h int) emf.Surface {
//	        return New(w, h)
//	    })
//	}
//
// Register panics if factory is nil or the name is already registered.
func Register(name string, factory SurfaceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("emf: Register factory is nil")
	}
	if _, dup := surfaces[name]; dup {
		panic("emf: Register called twice for " + name)
	}
	surfaces[name] = factory
}

// Unregister removes a surface from the registry.
// If the surface is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(surfaces, name)
}

// NewSurface creates a surface by registered name.
func NewSurface(name string, width, height int) (Surface, error) {
	registryMu.RLock()
	factory, ok := surfaces[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("emf: unknown surface %q (forgotten import?)", name)
	}
	return factory(width, height), nil
}

// Surfaces returns the sorted names of registered surfaces.
func Surfaces() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(surfaces))
	for name := range surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
