package catalog

import (
	"maps"
	"slices"
)

// Favorites is a value set of record ids. Toggle never modifies the
// receiver, so a Favorites can be shared freely between views.
type Favorites struct {
	ids map[int]struct{}
}

func (f Favorites) Toggle(id int) Favorites {
	next := make(map[int]struct{}, len(f.ids)+1)
	maps.Copy(next, f.ids)
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return Favorites{ids: next}
}

func (f Favorites) Has(id int) bool {
	_, ok := f.ids[id]
	return ok
}

func (f Favorites) Len() int {
	return len(f.ids)
}

func (f Favorites) IDs() []int {
	return slices.Sorted(maps.Keys(f.ids))
}
