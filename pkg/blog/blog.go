package blog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("blog post not found")

// Post is a published blog article. Content is omitted from list views.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content,omitempty"`
	Author    string    `json:"author"`
	Date      time.Time `json:"date"`
	ReadTime  string    `json:"readTime"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"imageUrl"`
	Featured  bool      `json:"featured"`
	Slug      string    `json:"slug"`
	Tags      []string  `json:"tags"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Filter narrows the post set; zero values impose no constraint.
type Filter struct {
	Category     string
	FeaturedOnly bool
	Search       string
}

// ListResult is one page of posts plus totals.
type ListResult struct {
	Posts      []Post `json:"posts"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

// Repository is the persistence port for blog posts.
type Repository interface {
	// List returns posts without body content, newest first with featured
	// posts ranked up within a date.
	List(ctx context.Context, f Filter, limit, offset int) ([]Post, error)
	Count(ctx context.Context, f Filter) (int, error)
	// GetBySlug returns the full post and atomically bumps its view counter.
	GetBySlug(ctx context.Context, slug string) (Post, error)
	// Featured returns the most recent featured post.
	Featured(ctx context.Context) (Post, error)
	Categories(ctx context.Context) ([]string, error)
}

// UseCase exposes blog reads to the HTTP layer.
type UseCase interface {
	List(ctx context.Context, f Filter, page, limit int) (ListResult, error)
	GetBySlug(ctx context.Context, slug string) (Post, error)
	Featured(ctx context.Context) (Post, error)
	Categories(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context, f Filter, page, limit int) (ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit
	posts, err := s.repo.List(ctx, f, limit, offset)
	if err != nil {
		return ListResult{}, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return ListResult{}, err
	}
	if posts == nil {
		posts = []Post{}
	}
	return ListResult{
		Posts:      posts,
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) Featured(ctx context.Context) (Post, error) {
	return s.repo.Featured(ctx)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
