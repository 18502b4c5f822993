package render

import "earthly/internal/pages"

type Renderer interface {
	RenderCards(view CardListView) string
	RenderDetail(view DetailView) string
	RenderHome(home pages.Home) string
	RenderAbout(about pages.About) string
}

type CardListView struct {
	// Noun is the plural shown in headings and the empty state.
	Noun  string
	Total int
	Items []CardItem
}

type CardItem struct {
	ID          int
	Name        string
	Location    string
	Category    string
	Description string
	Price       float64
	Rating      float64
	Favorite    bool
}

type DetailView struct {
	ID          int
	Name        string
	Location    string
	Category    string
	Description string
	Experience  string
	Amenities   []string
	Highlights  []string
	Price       float64
	Rating      float64
	Favorite    bool
}

func (v CardListView) IsEmpty() bool {
	return len(v.Items) == 0
}
