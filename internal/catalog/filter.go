package catalog

import (
	"fmt"
	"math"
)

const MaxRating = 5.0

type FilterState struct {
	Category  Category
	MaxPrice  float64
	MinRating float64
}

func NewFilterState(ceiling float64) FilterState {
	return FilterState{
		Category:  CategoryAll,
		MaxPrice:  ceiling,
		MinRating: 0,
	}
}

func (f FilterState) WithCategory(c Category) FilterState {
	newF := f
	newF.Category = c
	return newF
}

func (f FilterState) WithMaxPrice(p float64) FilterState {
	newF := f
	newF.MaxPrice = p
	return newF
}

func (f FilterState) WithMinRating(r float64) FilterState {
	newF := f
	newF.MinRating = r
	return newF
}

func (f FilterState) Validate() error {
	if _, err := ParseCategory(string(f.Category)); err != nil {
		return fmt.Errorf("%w: %q", err, f.Category)
	}
	if math.IsNaN(f.MaxPrice) || f.MaxPrice < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidPrice, f.MaxPrice)
	}
	if math.IsNaN(f.MinRating) || f.MinRating < 0 || f.MinRating > MaxRating {
		return fmt.Errorf("%w: got %v", ErrInvalidRating, f.MinRating)
	}
	return nil
}

func Matches(r Record, f FilterState) bool {
	if f.Category != CategoryAll && r.RecordCategory() != f.Category {
		return false
	}
	if r.RecordPrice() > f.MaxPrice {
		return false
	}
	return r.RecordRating() >= f.MinRating
}

// Visible keeps the records that match f, in their original order.
func Visible[R Record](records []R, f FilterState) []R {
	results := make([]R, 0, len(records))
	for _, r := range records {
		if Matches(r, f) {
			results = append(results, r)
		}
	}
	return results
}
