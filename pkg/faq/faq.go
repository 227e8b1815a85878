package faq

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FAQ is a single question/answer entry, ordered within its category.
type FAQ struct {
	ID         uuid.UUID `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	Helpful    int       `json:"helpful"`
	NotHelpful int       `json:"notHelpful"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Filter narrows the FAQ set; zero values impose no constraint.
type Filter struct {
	Category string
	Search   string
}

type ListResult struct {
	FAQs       []FAQ `json:"faqs"`
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

type Repository interface {
	// List returns FAQs sorted by display order, then category.
	List(ctx context.Context, f Filter, limit, offset int) ([]FAQ, error)
	Count(ctx context.Context, f Filter) (int, error)
}

type UseCase interface {
	List(ctx context.Context, f Filter, page, limit int) (ListResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context, f Filter, page, limit int) (ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit
	faqs, err := s.repo.List(ctx, f, limit, offset)
	if err != nil {
		return ListResult{}, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return ListResult{}, err
	}
	if faqs == nil {
		faqs = []FAQ{}
	}
	return ListResult{
		FAQs:       faqs,
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}
