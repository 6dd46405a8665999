package browscap

import (
	"fmt"
	"strings"
)

// resolve walks the parent chain starting at the matched record and merges
// the properties of every record on it. The first record on the chain that
// defines a property wins, so a child always shadows its ancestors.
//
// Parent references are followed case-insensitively. A chain that revisits a
// record fails with ErrCyclicInheritance.
func resolve(src Source, schema Schema, query, start string) (Result, error) {
	res := newResult(schema, query)
	res.pattern = start

	visited := make(map[string]struct{}, 8)
	current := start
	for current != "" {
		id := strings.ToLower(current)
		if _, seen := visited[id]; seen {
			return Result{}, fmt.Errorf("%w: %s -> %s",
				ErrCyclicInheritance, strings.Join(res.chain, " -> "), current)
		}
		visited[id] = struct{}{}
		res.chain = append(res.chain, current)

		merge(res.strings, current, src.String)
		merge(res.ints, current, src.Int)
		merge(res.bools, current, src.Bool)

		parent, ok := src.String(current, ParentProperty)
		if !ok {
			break
		}
		current = strings.ToLower(parent)
	}

	return res, nil
}

// merge fills every field that is still unset from the given section.
func merge[T any](fields []Field[T], section string, get func(section, property string) (T, bool)) {
	for i := range fields {
		if fields[i].Set {
			continue
		}
		if v, ok := get(section, fields[i].Name); ok {
			fields[i].Value = v
			fields[i].Set = true
		}
	}
}
