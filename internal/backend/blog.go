package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

// BlogQuery selects a page of published posts. It is an immutable
// value: every filter mutator returns a copy with the page reset to 1,
// so "filter change resets pagination" holds structurally rather than
// at each call site.
type BlogQuery struct {
	Page         int
	PerPage      int
	Search       string
	Category     string
	Tag          string
	FeaturedOnly bool
}

func NewBlogQuery() BlogQuery {
	return BlogQuery{Page: 1, PerPage: 10}
}

func (q BlogQuery) WithPage(page int) BlogQuery {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

func (q BlogQuery) WithSearch(search string) BlogQuery {
	q.Search = search
	q.Page = 1
	return q
}

func (q BlogQuery) WithCategory(category string) BlogQuery {
	q.Category = category
	q.Page = 1
	return q
}

func (q BlogQuery) WithTag(tag string) BlogQuery {
	q.Tag = tag
	q.Page = 1
	return q
}

func (q BlogQuery) WithFeaturedOnly(featured bool) BlogQuery {
	q.FeaturedOnly = featured
	q.Page = 1
	return q
}

// HasFilters reports whether any filter beyond plain pagination is
// active.
func (q BlogQuery) HasFilters() bool {
	return q.Search != "" || q.Category != "" || q.Tag != "" || q.FeaturedOnly
}

func (q BlogQuery) values() url.Values {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Tag != "" {
		v.Set("tag", q.Tag)
	}
	if q.FeaturedOnly {
		v.Set("featured", "true")
	}
	return v
}

func (c *Client) PublicBlogs(ctx context.Context, q BlogQuery) (*domain.BlogPage, error) {
	var page domain.BlogPage
	if err := c.get(ctx, "/blogs/public", q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) PublicBlogBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.get(ctx, "/blogs/public/"+slug, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) BlogCategories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.get(ctx, "/blogs/public/categories/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) BlogTags(ctx context.Context) ([]string, error) {
	var out struct {
		Tags []string `json:"tags"`
	}
	if err := c.get(ctx, "/blogs/public/tags/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Tags, nil
}

func (c *Client) LikeBlog(ctx context.Context, slug string) (int, error) {
	var out struct {
		Likes int `json:"likes"`
	}
	if err := c.send(ctx, http.MethodPost, "/blogs/public/"+slug+"/like", nil, &out); err != nil {
		return 0, err
	}
	return out.Likes, nil
}

// Authoring endpoints below require an admin session.

type BlogCreate struct {
	Title           string            `json:"title"`
	Excerpt         string            `json:"excerpt,omitempty"`
	Content         string            `json:"content"`
	FeaturedImage   string            `json:"featured_image,omitempty"`
	Category        string            `json:"category,omitempty"`
	Tags            []string          `json:"tags"`
	MetaTitle       string            `json:"meta_title,omitempty"`
	MetaDescription string            `json:"meta_description,omitempty"`
	Status          domain.BlogStatus `json:"status,omitempty"`
	IsFeatured      bool              `json:"is_featured"`
}

type BlogUpdate struct {
	Title           *string            `json:"title,omitempty"`
	Excerpt         *string            `json:"excerpt,omitempty"`
	Content         *string            `json:"content,omitempty"`
	FeaturedImage   *string            `json:"featured_image,omitempty"`
	Category        *string            `json:"category,omitempty"`
	Tags            *[]string          `json:"tags,omitempty"`
	MetaTitle       *string            `json:"meta_title,omitempty"`
	MetaDescription *string            `json:"meta_description,omitempty"`
	Status          *domain.BlogStatus `json:"status,omitempty"`
	IsFeatured      *bool              `json:"is_featured,omitempty"`
}

func (c *Client) ListBlogs(ctx context.Context) ([]domain.BlogListItem, error) {
	var items []domain.BlogListItem
	if err := c.get(ctx, "/blogs", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetBlog(ctx context.Context, blogID string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.get(ctx, "/blogs/"+blogID, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreateBlog(ctx context.Context, req BlogCreate) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.send(ctx, http.MethodPost, "/blogs", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdateBlog(ctx context.Context, blogID string, req BlogUpdate) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.send(ctx, http.MethodPut, "/blogs/"+blogID, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeleteBlog(ctx context.Context, blogID string) error {
	return c.send(ctx, http.MethodDelete, "/blogs/"+blogID, nil, nil)
}

func (c *Client) PublishBlog(ctx context.Context, blogID string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.send(ctx, http.MethodPost, "/blogs/"+blogID+"/publish", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UnpublishBlog(ctx context.Context, blogID string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.send(ctx, http.MethodPost, "/blogs/"+blogID+"/unpublish", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
