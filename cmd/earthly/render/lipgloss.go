package render

import (
	"earthly/internal/pages"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	favoriteMark    = "♥"
	notFavoriteMark = "♡"
	ratingMark      = "★"
	borderTop       = "┌"
	borderSide      = "│"
	borderBottom    = "└"
)

type LipglossRenderer struct {
	width    int
	currency string
	r        *lipgloss.Renderer

	nameStyle     lipgloss.Style
	metaStyle     lipgloss.Style
	descStyle     lipgloss.Style
	priceStyle    lipgloss.Style
	favoriteStyle lipgloss.Style
	headingStyle  lipgloss.Style
	borderStyle   lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:         width,
		currency:      "$",
		r:             r,
		nameStyle:     r.NewStyle().Bold(true),
		metaStyle:     r.NewStyle().Faint(true),
		descStyle:     r.NewStyle(),
		priceStyle:    r.NewStyle().Bold(true),
		favoriteStyle: r.NewStyle().Foreground(lipgloss.Color("9")),
		headingStyle:  r.NewStyle().Bold(true).Underline(true),
		borderStyle:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) WithCurrency(symbol string) *LipglossRenderer {
	if symbol != "" {
		r.currency = symbol
	}
	return r
}

func (r *LipglossRenderer) price(p float64) string {
	return fmt.Sprintf("%s%.0f", r.currency, p)
}

func (r *LipglossRenderer) mark(favorite bool) string {
	if favorite {
		return r.favoriteStyle.Render(favoriteMark)
	}
	return notFavoriteMark
}

func (r *LipglossRenderer) RenderCards(view CardListView) string {
	noun := view.Noun
	if view.IsEmpty() {
		return fmt.Sprintf("No %s found.\nTry adjusting your filters.\n", noun)
	}

	var sb strings.Builder
	title := strings.ToUpper(noun[:1]) + noun[1:]
	sb.WriteString(r.headingStyle.Render(title))
	sb.WriteString(r.metaStyle.Render(fmt.Sprintf("  %d of %d", len(view.Items), view.Total)))
	sb.WriteString("\n\n")

	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderCard(item, last))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderCard(item CardItem, last bool) string {
	name := r.nameStyle.Render(fmt.Sprintf("%d  %s", item.ID, item.Name))
	price := r.priceStyle.Render(r.price(item.Price))

	padding := max(1, r.width-lipgloss.Width(name)-lipgloss.Width(price))
	headerLine := name + strings.Repeat(" ", padding) + price

	meta := r.metaStyle.Render(fmt.Sprintf("%s · %s · %s %.1f", item.Category, item.Location, ratingMark, item.Rating))

	lines := []string{
		headerLine,
		"   " + r.mark(item.Favorite) + " " + meta,
	}
	if item.Description != "" {
		lines = append(lines, r.descStyle.Render("     "+item.Description))
	}
	if !last {
		lines = append(lines, "", "")
	}

	return strings.Join(lines, "\n")
}

func (r *LipglossRenderer) RenderDetail(view DetailView) string {
	border := func(s string) string {
		return r.borderStyle.Render(borderSide) + s
	}

	var lines []string
	lines = append(lines, r.borderStyle.Render(borderTop)+" "+r.nameStyle.Render(view.Name))
	lines = append(lines, border(" "+r.metaStyle.Render(view.Category+" · "+view.Location)))
	lines = append(lines, border(""))

	lines = append(lines, border(" "+r.headingStyle.Render("The Experience")))
	lines = append(lines, border(" "+view.Description))
	if view.Experience != "" {
		lines = append(lines, border(" "+view.Experience))
	}

	for _, section := range []struct {
		title string
		items []string
	}{
		{"Amenities", view.Amenities},
		{"Highlights", view.Highlights},
	} {
		if len(section.items) == 0 {
			continue
		}
		lines = append(lines, border(""))
		lines = append(lines, border(" "+r.headingStyle.Render(section.title)))
		for _, item := range section.items {
			lines = append(lines, border("   - "+item))
		}
	}

	lines = append(lines, border(""))
	lines = append(lines, border(fmt.Sprintf(" %s %.1f rating · %s", ratingMark, view.Rating, r.priceStyle.Render(r.price(view.Price)))))
	if view.Favorite {
		lines = append(lines, border(" "+r.mark(true)+" In your favorites"))
	} else {
		lines = append(lines, border(" "+r.mark(false)+" Not in your favorites"))
	}
	lines = append(lines, r.borderStyle.Render(borderBottom))

	return strings.Join(lines, "\n") + "\n"
}

func (r *LipglossRenderer) renderNav(brand string, nav []pages.Link) string {
	names := make([]string, 0, len(nav))
	for _, l := range nav {
		name := l.Name
		if l.External() {
			name += " ↗"
		}
		names = append(names, name)
	}
	return r.nameStyle.Render(brand) + "  " + r.metaStyle.Render(strings.Join(names, " · "))
}

func (r *LipglossRenderer) RenderHome(home pages.Home) string {
	var sb strings.Builder
	sb.WriteString(r.renderNav(home.Brand, home.Nav))
	sb.WriteString("\n\n")
	sb.WriteString(r.headingStyle.Render(home.Title))
	sb.WriteString("\n")
	sb.WriteString(home.Subtitle)
	sb.WriteString("\n\n")

	for _, s := range home.Sections {
		sb.WriteString("  → ")
		sb.WriteString(s.Name)
		sb.WriteString(r.metaStyle.Render("  " + s.Href))
		sb.WriteString("\n")
	}

	if len(home.Popular) > 0 {
		sb.WriteString("\n")
		sb.WriteString(r.headingStyle.Render("Popular"))
		sb.WriteString("\n")
		for _, c := range home.Popular {
			text := r.descStyle.Render("  " + c.Text)
			price := r.priceStyle.Render(c.Price)
			padding := max(1, r.width-lipgloss.Width(text)-lipgloss.Width(price))
			sb.WriteString(text + strings.Repeat(" ", padding) + price)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (r *LipglossRenderer) RenderAbout(about pages.About) string {
	wrap := r.r.NewStyle().Width(r.width)

	var sb strings.Builder
	sb.WriteString(r.renderNav(about.Brand, about.Nav))
	sb.WriteString("\n\n")
	sb.WriteString(r.headingStyle.Render(about.Title))
	sb.WriteString("\n")
	sb.WriteString(wrap.Render(about.Intro))
	sb.WriteString("\n\n")
	sb.WriteString(wrap.Render(about.Globe))
	sb.WriteString("\n\n")

	for _, p := range about.Pillars {
		sb.WriteString(r.nameStyle.Render(p.Title))
		sb.WriteString("\n")
		sb.WriteString(wrap.Render(p.Description))
		sb.WriteString("\n\n")
	}

	sb.WriteString(wrap.Render(about.Philosophy))
	sb.WriteString("\n\n")
	sb.WriteString(r.metaStyle.Render(fmt.Sprintf("%q", about.Quote)))
	sb.WriteString("\n\n")
	sb.WriteString(r.metaStyle.Render(about.Footer))
	sb.WriteString("\n")
	return sb.String()
}
