package views

import (
	"context"
	"sync"

	"github.com/zealcatalyst/zeal-client/internal/backend"
	"github.com/zealcatalyst/zeal-client/internal/domain"
)

type BlogAPI interface {
	PublicBlogs(ctx context.Context, q backend.BlogQuery) (*domain.BlogPage, error)
	BlogCategories(ctx context.Context) ([]string, error)
	BlogTags(ctx context.Context) ([]string, error)
}

// BlogBrowser backs the public blog listing. All filter state lives in
// one immutable BlogQuery value, so changing any filter resets the page
// to 1 by construction.
type BlogBrowser struct {
	api BlogAPI

	mu         sync.Mutex
	query      backend.BlogQuery
	page       *domain.BlogPage
	categories []string
	tags       []string
}

func NewBlogBrowser(api BlogAPI) *BlogBrowser {
	return &BlogBrowser{
		api:   api,
		query: backend.NewBlogQuery(),
	}
}

func (b *BlogBrowser) Query() backend.BlogQuery {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

func (b *BlogBrowser) SetSearch(search string) {
	b.updateQuery(func(q backend.BlogQuery) backend.BlogQuery { return q.WithSearch(search) })
}

func (b *BlogBrowser) SetCategory(category string) {
	b.updateQuery(func(q backend.BlogQuery) backend.BlogQuery { return q.WithCategory(category) })
}

func (b *BlogBrowser) SetTag(tag string) {
	b.updateQuery(func(q backend.BlogQuery) backend.BlogQuery { return q.WithTag(tag) })
}

func (b *BlogBrowser) SetFeaturedOnly(featured bool) {
	b.updateQuery(func(q backend.BlogQuery) backend.BlogQuery { return q.WithFeaturedOnly(featured) })
}

func (b *BlogBrowser) SetPage(page int) {
	b.updateQuery(func(q backend.BlogQuery) backend.BlogQuery { return q.WithPage(page) })
}

func (b *BlogBrowser) updateQuery(f func(backend.BlogQuery) backend.BlogQuery) {
	b.mu.Lock()
	b.query = f(b.query)
	b.mu.Unlock()
}

// Load fetches the page for the current query. On failure the previous
// page stays visible and the error is returned for an inline error
// state.
func (b *BlogBrowser) Load(ctx context.Context) error {
	b.mu.Lock()
	q := b.query
	b.mu.Unlock()

	page, err := b.api.PublicBlogs(ctx, q)
	if err != nil {
		return err
	}

	b.mu.Lock()
	// Only commit if the query has not moved on while the request was
	// in flight; a stale response must not overwrite a newer page.
	if b.query == q {
		b.page = page
	}
	b.mu.Unlock()
	return nil
}

// LoadFilters fetches the category and tag lists. The two calls are
// independent; both must finish before the filter bar renders.
func (b *BlogBrowser) LoadFilters(ctx context.Context) error {
	categories, err := b.api.BlogCategories(ctx)
	if err != nil {
		return err
	}
	tags, err := b.api.BlogTags(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.categories = categories
	b.tags = tags
	b.mu.Unlock()
	return nil
}

func (b *BlogBrowser) Categories() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.categories
}

func (b *BlogBrowser) Tags() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tags
}

func (b *BlogBrowser) Page() *domain.BlogPage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

// ShowHero reports whether the featured hero block is visible: only on
// page 1 with no active filters.
func (b *BlogBrowser) ShowHero() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query.Page == 1 && !b.query.HasFilters()
}

// HeroPosts returns the featured posts for the hero block, empty when
// the hero is hidden.
func (b *BlogBrowser) HeroPosts() []domain.BlogListItem {
	if !b.ShowHero() {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page == nil {
		return nil
	}
	featured := make([]domain.BlogListItem, 0)
	for _, item := range b.page.Blogs {
		if item.IsFeatured {
			featured = append(featured, item)
		}
	}
	return featured
}

// GridPosts returns the regular grid. Featured posts are excluded only
// while the hero block is showing them.
func (b *BlogBrowser) GridPosts() []domain.BlogListItem {
	hero := b.ShowHero()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page == nil {
		return nil
	}
	if !hero {
		return b.page.Blogs
	}
	grid := make([]domain.BlogListItem, 0, len(b.page.Blogs))
	for _, item := range b.page.Blogs {
		if !item.IsFeatured {
			grid = append(grid, item)
		}
	}
	return grid
}
