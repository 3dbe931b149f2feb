package web

import (
	"context"
	"net/url"
	"os"

	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/core/ports"
	"go.trai.ch/wltime/internal/markup"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
)

// wishlistTableIndex selects the wishlist among the page's tables.
const wishlistTableIndex = 1

// Wishlist implements ports.RowSource for wishlist pages.
type Wishlist struct {
	fetcher ports.DocumentFetcher
	cfg     domain.TableConfig
}

// NewWishlist creates a Wishlist that fetches remote pages through fetcher.
func NewWishlist(fetcher ports.DocumentFetcher, cfg domain.TableConfig) *Wishlist {
	return &Wishlist{fetcher: fetcher, cfg: cfg}
}

// LoadTable reads the wishlist at location, an http(s) URL or a file path.
func (w *Wishlist) LoadTable(ctx context.Context, location string) (*domain.Table, error) {
	doc, base, err := w.open(ctx, location)
	if err != nil {
		return nil, err
	}
	return BuildTable(doc, base, w.cfg)
}

func (w *Wishlist) open(ctx context.Context, location string) (*html.Node, *url.URL, error) {
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		doc, err := w.fetcher.FetchDocument(ctx, location)
		if err != nil {
			return nil, nil, err
		}
		return doc, u, nil
	}

	//nolint:gosec // Reading the wishlist file named on the command line
	f, err := os.Open(location)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", location)
	}
	defer func() {
		_ = f.Close()
	}()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "path", location)
	}

	var base *url.URL
	if w.cfg.BaseURL != "" {
		base, err = url.Parse(w.cfg.BaseURL)
		if err != nil {
			return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "base_url", w.cfg.BaseURL)
		}
	}
	return doc, base, nil
}

// BuildTable extracts the wishlist rows from doc.
//
// The wishlist is the second table of the page, or the only one. A row
// containing an element of the title class is a data row linked to the first
// anchor inside that element; any other row is a header row and receives the
// time column label. Relative links are resolved against base when it is set.
func BuildTable(doc *html.Node, base *url.URL, cfg domain.TableConfig) (*domain.Table, error) {
	tables := markup.FindAll(doc, markup.Element("table"))
	var target *html.Node
	switch {
	case len(tables) > wishlistTableIndex:
		target = tables[wishlistTableIndex]
	case len(tables) == 1:
		target = tables[0]
	default:
		return nil, domain.ErrWishlistNotFound
	}

	isTitle := markup.HasClass(cfg.TitleClass)
	rows := markup.FindAll(target, markup.Element("tr"))

	column := cfg.Column
	if column == domain.AutoColumn {
		column = autoColumn(rows, isTitle)
	}
	label := cfg.HeaderLabel
	if label == "" {
		label = domain.HeaderLabel
	}

	table := &domain.Table{TimeColumn: column, HeaderLabel: label}
	for _, tr := range rows {
		row := &domain.Row{Cells: cellTexts(tr)}
		if title := markup.FindFirst(tr, isTitle); title != nil {
			row.Link = itemLink(title, base)
		} else {
			row.SetCell(column, label)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func isCell(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th")
}

func cellTexts(tr *html.Node) []string {
	cells := markup.Children(tr, isCell)
	texts := make([]string, 0, len(cells))
	for _, c := range cells {
		texts = append(texts, markup.CollapsedText(c))
	}
	return texts
}

// autoColumn places the time column after the cells of the first header row,
// or after the widest row when the table has no header.
func autoColumn(rows []*html.Node, isTitle markup.Matcher) int {
	widest := 0
	for _, tr := range rows {
		n := len(markup.Children(tr, isCell))
		if markup.FindFirst(tr, isTitle) == nil {
			return n
		}
		widest = max(widest, n)
	}
	return widest
}

func itemLink(title *html.Node, base *url.URL) string {
	anchor := title
	if !markup.Element("a")(title) {
		anchor = markup.FindFirst(title, markup.Element("a"))
	}
	if anchor == nil {
		return ""
	}
	href, ok := markup.Attr(anchor, "href")
	if !ok || href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
