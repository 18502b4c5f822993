package proptest

import (
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"math"
	"strconv"

	"pgregory.net/rapid"
)

const (
	InvVisibleMatchesPredicate = "visible-matches-predicate"
	InvVisibleKeepsOrder       = "visible-keeps-order"
	InvFilterWithinBounds      = "filter-within-bounds"
	InvSelectionInCatalog      = "selection-in-catalog"
	InvFavoritesSorted         = "favorites-sorted"
)

// verifyPageInvariants checks what must hold after any sequence of page
// operations.
func verifyPageInvariants(t *rapid.T, page *browse.Page[catalog.Destination]) {
	all := page.Store().All()
	f := page.Filter()

	if math.IsNaN(f.MaxPrice) || math.IsNaN(f.MinRating) || f.MaxPrice < 0 || f.MinRating < 0 || f.MinRating > catalog.MaxRating {
		t.Fatalf("[%s] violated: %+v", InvFilterWithinBounds, f)
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("[%s] violated: %+v: %v", InvFilterWithinBounds, f, err)
	}

	visible := page.Visible()
	var want []catalog.Destination
	for _, r := range all {
		if catalog.Matches(r, f) {
			want = append(want, r)
		}
	}
	if len(visible) != len(want) {
		t.Fatalf("[%s] violated: %d visible, %d match", InvVisibleMatchesPredicate, len(visible), len(want))
	}
	for i := range visible {
		if visible[i].ID != want[i].ID {
			t.Fatalf("[%s] violated: position %d has id %d, want %d", InvVisibleKeepsOrder, i, visible[i].ID, want[i].ID)
		}
	}

	if r, ok := page.Selected(); ok {
		if _, err := page.Store().Get(r.ID); err != nil {
			t.Fatalf("[%s] violated: selected id %d: %v", InvSelectionInCatalog, r.ID, err)
		}
	}

	ids := page.Favorites().IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("[%s] violated: %v", InvFavoritesSorted, ids)
		}
	}
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
