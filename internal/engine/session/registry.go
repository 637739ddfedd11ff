// Package session owns the lifetime of the backend's resident compilation
// session and the registry backends are selected from.
package session

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"

	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
)

// Registry holds the configured pluggable backends by name. Backends are
// registered at startup; Init selects one by name, never by loading code
// from a runtime-resolved path.
type Registry struct {
	backends map[string]ports.Backend
}

// NewRegistry creates a registry containing the given backends.
func NewRegistry(backends ...ports.Backend) *Registry {
	r := &Registry{backends: make(map[string]ports.Backend, len(backends))}
	for _, b := range backends {
		r.backends[b.Name()] = b
	}
	return r
}

// Lookup returns the backend registered under name. The name may also be a
// path whose last element matches a registered backend, for callers that
// still send compiler locations.
func (r *Registry) Lookup(name string) (ports.Backend, error) {
	if b, ok := r.backends[name]; ok {
		return b, nil
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		if b, ok := r.backends[name[i+1:]]; ok {
			return b, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrUnknownBackend, "backend lookup failed"), "backend", name)
}

// Names lists the registered backend names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
