package source

import (
	"fmt"
	"sort"

	"github.com/gammazero/toposort"
)

// Order returns the members of set so that each source comes after the
// sources it depends on. deps maps a source path to the paths it depends on.
// Sources that take part in no dependency keep insertion order and follow
// the ordered ones.
func Order(set *Set, deps map[string][]string) ([]*Source, error) {
	members := set.Sources()
	if len(deps) == 0 {
		return members, nil
	}

	// Map iteration order is random; sort keys so the result is stable.
	keys := make([]string, 0, len(deps))
	for path := range deps {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	edges := make([]toposort.Edge, 0)
	for _, path := range keys {
		if _, ok := set.Get(path); !ok {
			return nil, &UnknownSourceError{Path: path}
		}
		for _, dep := range deps[path] {
			if _, ok := set.Get(dep); !ok {
				return nil, &UnknownSourceError{Path: dep}
			}
			// dependency must come first
			edges = append(edges, toposort.Edge{dep, path})
		}
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, &CycleError{Cause: err}
	}

	ordered := make([]*Source, 0, len(members))
	seen := make(map[string]bool, len(members))
	for _, v := range sorted {
		path, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected type in topological sort result: %T", v)
		}
		if seen[path] {
			continue
		}
		src, _ := set.Get(path)
		ordered = append(ordered, src)
		seen[path] = true
	}
	for _, src := range members {
		if !seen[src.Path()] {
			ordered = append(ordered, src)
		}
	}
	return ordered, nil
}
