// Package admin holds the model registrations that drive the admin API:
// which columns a list shows, what it can be filtered and searched on, which
// fields are prepopulated and which inlines are edited with the parent.
package admin

import (
	"fmt"
	"sort"
	"sync"
)

// ModelAdmin describes how a model is presented by the admin surface
type ModelAdmin struct {
	Name               string
	Path               string
	ListDisplay        []string
	ListFilter         []string
	SearchFields       []string
	PrepopulatedFields map[string][]string
	Inlines            []string
	Ordering           []string
}

// Site is a registry of model admins keyed by model name
type Site struct {
	mu     sync.RWMutex
	models map[string]*ModelAdmin
}

// NewSite creates an empty site
func NewSite() *Site {
	return &Site{models: make(map[string]*ModelAdmin)}
}

// Register adds a model admin. Registering the same name twice is an error.
func (s *Site) Register(m *ModelAdmin) error {
	if m == nil || m.Name == "" {
		return fmt.Errorf("admin: model name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.models[m.Name]; ok {
		return fmt.Errorf("admin: model %q is already registered", m.Name)
	}
	s.models[m.Name] = m
	return nil
}

// MustRegister is Register that panics on error
func (s *Site) MustRegister(m *ModelAdmin) {
	if err := s.Register(m); err != nil {
		panic(err)
	}
}

// Get returns the registration for name
func (s *Site) Get(name string) (*ModelAdmin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.models[name]
	return m, ok
}

// Models returns every registration sorted by name
func (s *Site) Models() []*ModelAdmin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*ModelAdmin, 0, len(s.models))
	for _, m := range s.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SearchFields returns the search fields for name, or nil if unregistered
func (s *Site) SearchFields(name string) []string {
	if m, ok := s.Get(name); ok {
		return m.SearchFields
	}
	return nil
}
