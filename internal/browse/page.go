package browse

import (
	"earthly/internal/catalog"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type Kind string

const (
	KindDestinations Kind = "destinations"
	KindLodges       Kind = "lodges"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDestinations, KindLodges:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown page %q (want %s or %s)", s, KindDestinations, KindLodges)
}

// Ceiling is the price ceiling a page mounts with.
func (k Kind) Ceiling() float64 {
	if k == KindLodges {
		return 2000
	}
	return 1000
}

// Noun is the plural used in empty states, e.g. "No lodges found".
func (k Kind) Noun() string {
	return string(k)
}

// Page is one mounted catalog page: its store plus the session state that
// lives until the page is discarded.
type Page[R catalog.Record] struct {
	kind      Kind
	id        uuid.UUID
	store     *catalog.Store[R]
	filter    catalog.FilterState
	favorites catalog.Favorites
	selection catalog.Selection[R]
	panelOpen bool
	log       *slog.Logger
}

func NewPage[R catalog.Record](kind Kind, store *catalog.Store[R], log *slog.Logger) *Page[R] {
	id := uuid.New()
	p := &Page[R]{
		kind:   kind,
		id:     id,
		store:  store,
		filter: catalog.NewFilterState(kind.Ceiling()),
		log:    log.With("page", string(kind), "session", id.String()),
	}
	p.log.Debug("page mounted", "records", store.Len())
	return p
}

func (p *Page[R]) Kind() Kind {
	return p.kind
}

func (p *Page[R]) SessionID() uuid.UUID {
	return p.id
}

func (p *Page[R]) Store() *catalog.Store[R] {
	return p.store
}

func (p *Page[R]) Filter() catalog.FilterState {
	return p.filter
}

// SetFilter replaces the whole filter state after validating it.
func (p *Page[R]) SetFilter(f catalog.FilterState) error {
	if err := f.Validate(); err != nil {
		return err
	}
	p.filter = f
	p.log.Debug("filter changed", "category", f.Category, "max_price", f.MaxPrice, "min_rating", f.MinRating)
	return nil
}

func (p *Page[R]) SetCategory(name string) error {
	c, err := catalog.ParseCategory(name)
	if err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}
	return p.SetFilter(p.filter.WithCategory(c))
}

func (p *Page[R]) SetMaxPrice(price float64) error {
	return p.SetFilter(p.filter.WithMaxPrice(price))
}

func (p *Page[R]) SetMinRating(rating float64) error {
	return p.SetFilter(p.filter.WithMinRating(rating))
}

func (p *Page[R]) ResetFilters() {
	p.filter = catalog.NewFilterState(p.kind.Ceiling())
	p.log.Debug("filters reset")
}

// FilterActive reports whether a category other than All is selected.
func (p *Page[R]) FilterActive() bool {
	return p.filter.Category != catalog.CategoryAll
}

func (p *Page[R]) Visible() []R {
	return p.store.Visible(p.filter)
}

func (p *Page[R]) ToggleFavorite(id int) {
	p.favorites = p.favorites.Toggle(id)
	p.log.Debug("favorite toggled", "id", id, "favorite", p.favorites.Has(id))
}

func (p *Page[R]) IsFavorite(id int) bool {
	return p.favorites.Has(id)
}

func (p *Page[R]) Favorites() catalog.Favorites {
	return p.favorites
}

// Open shows the detail view for id, replacing any record already shown.
func (p *Page[R]) Open(id int) error {
	r, err := p.store.Get(id)
	if err != nil {
		return fmt.Errorf("open %d: %w", id, err)
	}
	p.selection.Open(r)
	p.log.Debug("detail opened", "id", id)
	return nil
}

func (p *Page[R]) Close() {
	if !p.selection.IsOpen() {
		return
	}
	p.selection.Close()
	p.log.Debug("detail closed")
}

func (p *Page[R]) Selected() (R, bool) {
	return p.selection.Current()
}

func (p *Page[R]) OpenFilterPanel() {
	p.panelOpen = true
}

func (p *Page[R]) CloseFilterPanel() {
	p.panelOpen = false
}

func (p *Page[R]) FilterPanelOpen() bool {
	return p.panelOpen
}

// PriceSteps are the ceilings offered by the advanced filter panel.
func PriceSteps() []float64 {
	var steps []float64
	for v := 300.0; v <= 3000; v += 100 {
		steps = append(steps, v)
	}
	return steps
}

// RatingSteps are the rating floors offered by the advanced filter panel.
func RatingSteps() []float64 {
	return []float64{0, 3, 4, 4.5, 5}
}

func RatingLabel(r float64) string {
	if r == 0 {
		return "Any"
	}
	return fmt.Sprintf("%g+", r)
}
