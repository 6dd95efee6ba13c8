package types

// Plan is a topologically ordered sequence of entries: every entry appears
// after all entries it depends on, each entry appears at most once, and
// entries with no dependency relationship keep their declaration order.
// A Plan is immutable after creation.
type Plan struct {
	entries []*Entry
}

// NewPlan creates a plan from an already ordered entry sequence
func NewPlan(entries []*Entry) *Plan {
	owned := make([]*Entry, len(entries))
	copy(owned, entries)
	return &Plan{entries: owned}
}

// Len returns the number of entries in the plan
func (p *Plan) Len() int {
	return len(p.entries)
}

// At returns the entry at position i
func (p *Plan) At(i int) *Entry {
	return p.entries[i]
}

// Entries returns a copy of the ordered entry sequence
func (p *Plan) Entries() []*Entry {
	out := make([]*Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Names returns the ordered entry names
func (p *Plan) Names() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Name
	}
	return out
}

// Index returns the position of the named entry, or -1 if absent
func (p *Plan) Index(name string) int {
	for i, e := range p.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}
