package types

import (
	"github.com/NexushasTaken/mdot/pkg/errors"
)

// EntrySet is an ordered collection of entries keyed by name. Insertion
// order is preserved so that resolution output is stable across runs.
// The zero value is an empty set ready for use.
type EntrySet struct {
	names   []string
	entries map[string]*Entry
}

// NewEntrySet builds a set from the given entries. It fails with
// DUPLICATE_ENTRY if two entries share a name and INVALID_INPUT if an
// entry has an empty name.
func NewEntrySet(entries ...*Entry) (*EntrySet, error) {
	s := &EntrySet{
		entries: make(map[string]*Entry, len(entries)),
	}
	for _, e := range entries {
		if err := s.Add(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends an entry, rejecting duplicates and empty names
func (s *EntrySet) Add(e *Entry) error {
	if e.Name == "" {
		return errors.New(errors.ErrInvalidInput, "entry name must not be empty")
	}
	if s.entries == nil {
		s.entries = make(map[string]*Entry)
	}
	if _, exists := s.entries[e.Name]; exists {
		return errors.Newf(errors.ErrDuplicateEntry, "duplicate entry %q", e.Name).
			WithDetail("name", e.Name)
	}
	s.names = append(s.names, e.Name)
	s.entries[e.Name] = e
	return nil
}

// Put inserts an entry, replacing any existing entry with the same name.
// A replaced entry keeps its original position; this is the merge behavior
// for later config files overriding earlier ones.
func (s *EntrySet) Put(e *Entry) error {
	if e.Name == "" {
		return errors.New(errors.ErrInvalidInput, "entry name must not be empty")
	}
	if s.entries == nil {
		s.entries = make(map[string]*Entry)
	}
	if _, exists := s.entries[e.Name]; exists {
		s.entries[e.Name] = e
		return nil
	}
	s.names = append(s.names, e.Name)
	s.entries[e.Name] = e
	return nil
}

// Get returns the entry with the given name
func (s *EntrySet) Get(name string) (*Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Has reports whether an entry with the given name exists
func (s *EntrySet) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Names returns the entry names in insertion order
func (s *EntrySet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Entries returns the entries in insertion order
func (s *EntrySet) Entries() []*Entry {
	out := make([]*Entry, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.entries[name])
	}
	return out
}

// Len returns the number of entries in the set
func (s *EntrySet) Len() int {
	return len(s.names)
}
