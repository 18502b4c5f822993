package proptest

import (
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"maps"
	"math"
	"slices"

	"pgregory.net/rapid"
)

// pageModel is the reference behavior of a destinations page session.
type pageModel struct {
	records   []catalog.Destination
	filter    catalog.FilterState
	favorites map[int]bool
	selected  *catalog.Destination
	panelOpen bool
}

func newPageModel(records []catalog.Destination) *pageModel {
	return &pageModel{
		records:   records,
		filter:    catalog.FilterState{Category: catalog.CategoryAll, MaxPrice: browse.KindDestinations.Ceiling()},
		favorites: make(map[int]bool),
	}
}

func (m *pageModel) setFilter(f catalog.FilterState) bool {
	if math.IsNaN(f.MaxPrice) || math.IsNaN(f.MinRating) {
		return false
	}
	if f.MaxPrice < 0 || f.MinRating < 0 || f.MinRating > catalog.MaxRating {
		return false
	}
	m.filter = f
	return true
}

func (m *pageModel) visible() []catalog.Destination {
	var out []catalog.Destination
	for _, r := range m.records {
		if m.filter.Category != catalog.CategoryAll && r.Category != m.filter.Category {
			continue
		}
		if r.Price > m.filter.MaxPrice || r.Rating < m.filter.MinRating {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (m *pageModel) toggle(id int) {
	if m.favorites[id] {
		delete(m.favorites, id)
		return
	}
	m.favorites[id] = true
}

func (m *pageModel) favoriteIDs() []int {
	return slices.Sorted(maps.Keys(m.favorites))
}

func (m *pageModel) open(id int) bool {
	for _, r := range m.records {
		if r.ID == id {
			m.selected = &r
			return true
		}
	}
	return false
}

func (m *pageModel) ids() []int {
	return recordIDs(m.records)
}

// CheckedPage applies every operation to the real page and the model and
// fails on the first divergence.
type CheckedPage struct {
	real  *browse.Page[catalog.Destination]
	model *pageModel
	t     *rapid.T
}

func NewCheckedPage(t *rapid.T, page *browse.Page[catalog.Destination], records []catalog.Destination) *CheckedPage {
	return &CheckedPage{
		real:  page,
		model: newPageModel(records),
		t:     t,
	}
}

func (c *CheckedPage) Model() *pageModel {
	return c.model
}

func (c *CheckedPage) check() {
	c.t.Helper()
	verifyPageInvariants(c.t, c.real)

	if got, want := c.real.Filter(), c.model.filter; got != want {
		c.t.Fatalf("filter divergence: real=%+v model=%+v", got, want)
	}
	assertRecordsEqual(c.t, c.model.visible(), c.real.Visible())

	if got, want := c.real.Favorites().IDs(), c.model.favoriteIDs(); !slices.Equal(got, want) {
		c.t.Fatalf("favorites divergence: real=%v model=%v", got, want)
	}

	r, open := c.real.Selected()
	if open != (c.model.selected != nil) {
		c.t.Fatalf("selection divergence: real open=%v model open=%v", open, c.model.selected != nil)
	}
	if open && r.ID != c.model.selected.ID {
		c.t.Fatalf("selection divergence: real=%d model=%d", r.ID, c.model.selected.ID)
	}

	if c.real.FilterPanelOpen() != c.model.panelOpen {
		c.t.Fatalf("panel divergence: real=%v model=%v", c.real.FilterPanelOpen(), c.model.panelOpen)
	}
}

func (c *CheckedPage) SetCategory(cat catalog.Category) {
	realErr := c.real.SetCategory(string(cat))
	if realErr != nil {
		c.t.Fatalf("SetCategory(%q) failed: %v", cat, realErr)
	}
	c.model.setFilter(c.model.filter.WithCategory(cat))
	c.check()
}

func (c *CheckedPage) SetMaxPrice(p float64) {
	realErr := c.real.SetMaxPrice(p)
	modelOK := c.model.setFilter(c.model.filter.WithMaxPrice(p))
	if (realErr == nil) != modelOK {
		c.t.Fatalf("SetMaxPrice(%v) divergence: real=%v model ok=%v", p, realErr, modelOK)
	}
	c.check()
}

func (c *CheckedPage) SetMinRating(r float64) {
	realErr := c.real.SetMinRating(r)
	modelOK := c.model.setFilter(c.model.filter.WithMinRating(r))
	if (realErr == nil) != modelOK {
		c.t.Fatalf("SetMinRating(%v) divergence: real=%v model ok=%v", r, realErr, modelOK)
	}
	c.check()
}

func (c *CheckedPage) Reset() {
	c.real.ResetFilters()
	c.model.filter = catalog.NewFilterState(browse.KindDestinations.Ceiling())
	c.check()
}

func (c *CheckedPage) ToggleFavorite(id int) {
	c.real.ToggleFavorite(id)
	c.model.toggle(id)
	c.check()
}

func (c *CheckedPage) Open(id int) {
	realErr := c.real.Open(id)
	modelOK := c.model.open(id)
	if (realErr == nil) != modelOK {
		c.t.Fatalf("Open(%d) divergence: real=%v model ok=%v", id, realErr, modelOK)
	}
	c.check()
}

func (c *CheckedPage) Close() {
	c.real.Close()
	c.model.selected = nil
	c.check()
}

func (c *CheckedPage) Panel(open bool) {
	if open {
		c.real.OpenFilterPanel()
	} else {
		c.real.CloseFilterPanel()
	}
	c.model.panelOpen = open
	c.check()
}
