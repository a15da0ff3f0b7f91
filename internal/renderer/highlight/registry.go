package highlight

import (
	"path/filepath"
	"strings"
	"sync"
)

// Registry maps filenames to syntax definitions. Definitions are consulted
// in registration order and the first match wins.
type Registry struct {
	mu     sync.RWMutex
	syntax []*Syntax
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns a registry with the built-in definitions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

// Register adds a definition. A definition with the same name as an
// existing one replaces it in place.
func (r *Registry) Register(s *Syntax) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.syntax {
		if existing.Name == s.Name {
			r.syntax[i] = s
			return nil
		}
	}
	r.syntax = append(r.syntax, s)
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*Syntax, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.syntax {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Select returns the definition matching filename, or nil if none does.
func (r *Registry) Select(filename string) *Syntax {
	if filename == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	for _, s := range r.syntax {
		for _, pattern := range s.FileMatch {
			if matchFilename(pattern, base, ext) {
				return s
			}
		}
	}
	return nil
}

// Names returns the registered definition names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.syntax))
	for _, s := range r.syntax {
		names = append(names, s.Name)
	}
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.syntax)
}

func matchFilename(pattern, base, ext string) bool {
	if pattern == "" {
		return false
	}
	if pattern[0] == '.' {
		return ext != "" && ext == pattern
	}
	return strings.Contains(base, pattern)
}
