package render

import (
	"bytes"
	"earthly/internal/pages"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(width int) *LipglossRenderer {
	return NewLipglossRenderer(&bytes.Buffer{}, width)
}

func sampleCards() CardListView {
	return CardListView{
		Noun:  "lodges",
		Total: 8,
		Items: []CardItem{
			{ID: 3, Name: "Deep Forest Cabin", Location: "Black Forest, Germany", Category: "Forest",
				Description: "A secluded hideaway surrounded by ancient pines.", Price: 450, Rating: 4.7, Favorite: true},
			{ID: 6, Name: "Rainforest Treehouse", Location: "Costa Rica", Category: "Forest", Price: 550, Rating: 4.8},
		},
	}
}

func TestRenderCards(t *testing.T) {
	t.Run("empty state names the page", func(t *testing.T) {
		out := newTestRenderer(80).RenderCards(CardListView{Noun: "lodges", Total: 8})

		assert.Equal(t, "No lodges found.\nTry adjusting your filters.\n", out)
	})

	t.Run("heading counts visible of total", func(t *testing.T) {
		out := newTestRenderer(80).RenderCards(sampleCards())

		assert.True(t, strings.HasPrefix(out, "Lodges  2 of 8\n\n"))
	})

	t.Run("price is right aligned to width", func(t *testing.T) {
		out := newTestRenderer(60).RenderCards(sampleCards())

		var header string
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "3  Deep Forest Cabin") {
				header = line
			}
		}
		require.NotEmpty(t, header)
		assert.Equal(t, 60, lipgloss.Width(header))
		assert.True(t, strings.HasSuffix(header, "$450"))
	})

	t.Run("favorite marks", func(t *testing.T) {
		out := newTestRenderer(80).RenderCards(sampleCards())

		assert.Contains(t, out, "♥ Forest · Black Forest, Germany · ★ 4.7")
		assert.Contains(t, out, "♡ Forest · Costa Rica · ★ 4.8")
	})

	t.Run("narrow width keeps one space before price", func(t *testing.T) {
		out := newTestRenderer(10).RenderCards(sampleCards())

		assert.Contains(t, out, "3  Deep Forest Cabin $450")
	})

	t.Run("currency symbol", func(t *testing.T) {
		out := newTestRenderer(80).WithCurrency("€").RenderCards(sampleCards())

		assert.Contains(t, out, "€550")
	})
}

func TestRenderDetail(t *testing.T) {
	view := DetailView{
		ID: 5, Name: "Nordic Glass Igloo", Location: "Lapland, Finland", Category: "Mountains",
		Description: "Sleep under the Aurora Borealis in a heated glass igloo.",
		Experience:  "A once-in-a-lifetime arctic experience.",
		Amenities:   []string{"Thermal Glass Roof", "Heated Floors"},
		Highlights:  []string{"Northern Lights"},
		Price:       1200, Rating: 5,
	}

	t.Run("contains every section", func(t *testing.T) {
		out := newTestRenderer(80).RenderDetail(view)

		assert.Contains(t, out, "┌ Nordic Glass Igloo")
		assert.Contains(t, out, "│ Mountains · Lapland, Finland")
		assert.Contains(t, out, "│ The Experience")
		assert.Contains(t, out, "│   - Heated Floors")
		assert.Contains(t, out, "│ Highlights")
		assert.Contains(t, out, "│ ★ 5.0 rating · $1200")
		assert.Contains(t, out, "│ ♡ Not in your favorites")
		assert.True(t, strings.HasSuffix(out, "└\n"))
	})

	t.Run("favorite state", func(t *testing.T) {
		fav := view
		fav.Favorite = true

		out := newTestRenderer(80).RenderDetail(fav)

		assert.Contains(t, out, "♥ In your favorites")
	})

	t.Run("empty sections are skipped", func(t *testing.T) {
		bare := view
		bare.Amenities = nil
		bare.Highlights = nil

		out := newTestRenderer(80).RenderDetail(bare)

		assert.NotContains(t, out, "Amenities")
		assert.NotContains(t, out, "Highlights")
	})
}

func TestRenderHome(t *testing.T) {
	home, err := pages.LoadHome()
	require.NoError(t, err)

	out := newTestRenderer(80).RenderHome(home)

	assert.True(t, strings.HasPrefix(out, "EARTHLY  About Us · Globe ↗ · Settings"))
	assert.Contains(t, out, "Discover Destinations\nSustainable adventures start here")
	assert.Contains(t, out, "  → Lodges  /lodges")
	assert.Contains(t, out, "Relax on hidden beaches and turquoise waters.")
	assert.Contains(t, out, "$400")
}

func TestRenderAbout(t *testing.T) {
	about, err := pages.LoadAbout()
	require.NoError(t, err)

	out := newTestRenderer(80).RenderAbout(about)

	assert.Contains(t, out, "The Earthly Manifesto")
	assert.Contains(t, out, "Ancestral Wisdom")
	assert.Contains(t, out, "borrow it from our children")
}
