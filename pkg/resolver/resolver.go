// Package resolver computes install/link plans from entry sets.
//
// Resolution is a depth-first traversal over the declared dependency graph,
// visiting entries in declaration order and each entry's dependencies in
// their declared order. The result is a stable topological order: the same
// entry set always yields the same plan.
package resolver

import (
	"strings"

	"github.com/NexushasTaken/mdot/pkg/errors"
	"github.com/NexushasTaken/mdot/pkg/logging"
	"github.com/NexushasTaken/mdot/pkg/types"
)

// Options control resolution behavior
type Options struct {
	// Strict turns references to unknown entry names into
	// UNRESOLVED_DEPENDENCY errors. When false, unknown names are treated
	// as external references and skipped.
	Strict bool
}

// visit marks for the depth-first traversal
type mark int

const (
	unvisited mark = iota
	inProgress
	done
)

type resolution struct {
	set   *types.EntrySet
	opts  Options
	marks map[string]mark
	stack []string
	out   []*types.Entry
}

// Resolve produces a topologically ordered plan for the given entry set.
// It is a pure function of its input: no shared state, safe to call
// concurrently on independent sets.
//
// Failure modes: CYCLIC_DEPENDENCY when an entry depends on itself directly
// or transitively (the error detail "cycle" holds the full path), and
// UNRESOLVED_DEPENDENCY under Options.Strict when a dependency names no
// known entry.
func Resolve(set *types.EntrySet, opts Options) (*types.Plan, error) {
	logger := logging.GetLogger("resolver")

	r := &resolution{
		set:   set,
		opts:  opts,
		marks: make(map[string]mark, set.Len()),
	}

	for _, name := range set.Names() {
		entry, _ := set.Get(name)
		if !entry.Enabled {
			logger.Debug().Str("entry", name).Msg("Skipping disabled entry")
			continue
		}
		if err := r.visit(name); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Int("entries", set.Len()).
		Int("planned", len(r.out)).
		Bool("strict", opts.Strict).
		Msg("Resolution complete")

	return types.NewPlan(r.out), nil
}

func (r *resolution) visit(name string) error {
	switch r.marks[name] {
	case done:
		return nil
	case inProgress:
		cycle := r.cycleFrom(name)
		return errors.Newf(errors.ErrCyclicDependency,
			"dependency cycle: %s", strings.Join(cycle, " -> ")).
			WithDetail("cycle", cycle)
	}

	entry, ok := r.set.Get(name)
	if !ok || !entry.Enabled {
		// External reference (or disabled entry): not planned, and only an
		// error when strict resolution is requested.
		if r.opts.Strict && !ok {
			dependent := ""
			if len(r.stack) > 0 {
				dependent = r.stack[len(r.stack)-1]
			}
			return errors.Newf(errors.ErrUnresolvedDependency,
				"entry %q depends on unknown entry %q", dependent, name).
				WithDetail("name", name).
				WithDetail("dependent", dependent)
		}
		return nil
	}

	r.marks[name] = inProgress
	r.stack = append(r.stack, name)

	for _, dep := range entry.Depends {
		if err := r.visit(dep); err != nil {
			return err
		}
	}

	r.stack = r.stack[:len(r.stack)-1]
	r.marks[name] = done
	r.out = append(r.out, entry)
	return nil
}

// cycleFrom reports the cycle path from the repeated node back to itself,
// e.g. [A B A] for A -> B -> A.
func (r *resolution) cycleFrom(name string) []string {
	start := 0
	for i, n := range r.stack {
		if n == name {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(r.stack)-start+1)
	cycle = append(cycle, r.stack[start:]...)
	cycle = append(cycle, name)
	return cycle
}
