package guide

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("guide not found")

// Guide is a long-form career guide. Content is omitted from list views.
type Guide struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Difficulty  string    `json:"difficulty"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"imageUrl"`
	Topics      []string  `json:"topics"`
	Featured    bool      `json:"featured"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	Downloads   int       `json:"downloads"`
	Rating      float32   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Filter narrows the guide set; zero values impose no constraint.
type Filter struct {
	Category     string
	Difficulty   string
	FeaturedOnly bool
	Search       string
}

type ListResult struct {
	Guides     []Guide `json:"guides"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
}

type Repository interface {
	List(ctx context.Context, f Filter, limit, offset int) ([]Guide, error)
	Count(ctx context.Context, f Filter) (int, error)
	// GetBySlug returns the full guide and atomically bumps its download counter.
	GetBySlug(ctx context.Context, slug string) (Guide, error)
	Featured(ctx context.Context) (Guide, error)
	Categories(ctx context.Context) ([]string, error)
	Difficulties(ctx context.Context) ([]string, error)
}

type UseCase interface {
	List(ctx context.Context, f Filter, page, limit int) (ListResult, error)
	GetBySlug(ctx context.Context, slug string) (Guide, error)
	Featured(ctx context.Context) (Guide, error)
	Categories(ctx context.Context) ([]string, error)
	Difficulties(ctx context.Context) ([]string, error)
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
	guides, err := s.repo.List(ctx, f, limit, offset)
	if err != nil {
		return ListResult{}, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return ListResult{}, err
	}
	if guides == nil {
		guides = []Guide{}
	}
	return ListResult{
		Guides:     guides,
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (Guide, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) Featured(ctx context.Context) (Guide, error) {
	return s.repo.Featured(ctx)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *service) Difficulties(ctx context.Context) ([]string, error) {
	return s.repo.Difficulties(ctx)
}
