package catalog

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateID        = errors.New("duplicate record id")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrInvalidPrice       = errors.New("max price must not be negative")
	ErrInvalidRating      = errors.New("min rating must be between 0 and 5")
	ErrUnsupportedVersion = errors.New("unsupported catalog file version")
)

type Category string

const (
	CategoryAll       Category = "All"
	CategoryMountains Category = "Mountains"
	CategoryBeaches   Category = "Beaches"
	CategoryDesert    Category = "Desert"
	CategoryForest    Category = "Forest"
	CategoryCity      Category = "City"
)

var recordCategories = []Category{
	CategoryMountains,
	CategoryBeaches,
	CategoryDesert,
	CategoryForest,
	CategoryCity,
}

// Categories returns the filter choices in display order, starting with All.
func Categories() []Category {
	return append([]Category{CategoryAll}, recordCategories...)
}

// ParseCategory matches s exactly against the enumeration. All is accepted
// because it is a valid filter value; records never carry it.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

func (c Category) IsRecordCategory() bool {
	for _, rc := range recordCategories {
		if c == rc {
			return true
		}
	}
	return false
}
