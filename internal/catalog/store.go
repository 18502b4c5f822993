package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Store holds a catalog that is fixed for the lifetime of a page session.
type Store[R Record] struct {
	records []R
	byID    map[int]int
}

func NewStore[R Record](records []R) (*Store[R], error) {
	byID := make(map[int]int, len(records))
	for i, r := range records {
		if _, exists := byID[r.RecordID()]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, r.RecordID())
		}
		byID[r.RecordID()] = i
	}

	return &Store[R]{
		records: slices.Clone(records),
		byID:    byID,
	}, nil
}

func (s *Store[R]) All() []R {
	return slices.Clone(s.records)
}

func (s *Store[R]) Get(id int) (R, error) {
	i, ok := s.byID[id]
	if !ok {
		var zero R
		return zero, ErrNotFound
	}
	return s.records[i], nil
}

func (s *Store[R]) Len() int {
	return len(s.records)
}

func (s *Store[R]) Visible(f FilterState) []R {
	return Visible(s.records, f)
}

func (s *Store[R]) Search(query string) []R {
	if query == "" {
		return s.All()
	}

	query = strings.ToLower(query)
	var results []R
	for _, r := range s.records {
		if matchesQuery(r, query) {
			results = append(results, r)
		}
	}
	return results
}

func matchesQuery(r Record, query string) bool {
	if strings.Contains(strings.ToLower(r.Title()), query) {
		return true
	}
	return strings.Contains(strings.ToLower(r.Place()), query)
}
