package job

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	defaultLimit = 3
	maxLimit     = 100
)

// UseCase is the application surface of the job listing engine.
type UseCase interface {
	List(ctx context.Context, f Filter, page, limit int) (Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (Listing, error)
	Create(ctx context.Context, l Listing) (Listing, error)
	Update(ctx context.Context, id uuid.UUID, p Patch) (Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RecordApplyClick(ctx context.Context, id uuid.UUID) (Listing, error)
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo Repository
}

// NewService returns the default UseCase implementation.
func NewService(repo Repository) UseCase { return &service{repo: repo} }

// List produces one page of active listings, newest first, plus pagination
// metadata. Page is clamped to >= 1 and limit to [1, 100]; totalJobs comes
// from an independent count so the metadata stays accurate on partial pages.
func (s *service) List(ctx context.Context, f Filter, page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	skip := (page - 1) * limit

	jobs, err := s.repo.List(ctx, f, limit, skip)
	if err != nil {
		return Page{}, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return Page{}, err
	}
	if jobs == nil {
		jobs = []Listing{}
	}
	return Page{
		Jobs: jobs,
		Pagination: Pagination{
			CurrentPage: page,
			TotalPages:  (total + limit - 1) / limit,
			TotalJobs:   total,
			HasNext:     skip+len(jobs) < total,
			HasPrev:     page > 1,
		},
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, l Listing) (Listing, error) {
	l.JobTitle = strings.TrimSpace(l.JobTitle)
	l.CompanyName = strings.TrimSpace(l.CompanyName)
	l.Location = strings.TrimSpace(l.Location)
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	l.ApplyClickCount = 0
	l.IsActive = true
	if err := l.Validate(); err != nil {
		return Listing{}, err
	}
	return s.repo.Create(ctx, l)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, p Patch) (Listing, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	merged := p.Apply(current)
	if err := merged.Validate(); err != nil {
		return Listing{}, err
	}
	return s.repo.Update(ctx, merged)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) RecordApplyClick(ctx context.Context, id uuid.UUID) (Listing, error) {
	return s.repo.IncrementApplyClicks(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

// Stats keeps the historical response shape: the breakdown arrays hold one
// marker per active listing with count fixed at 1, not reduced sums.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	rows, err := s.repo.StatsRows(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		TotalJobs:         len(rows),
		ByCategory:        []CategoryCount{},
		ByEmploymentType:  []TypeCount{},
		ByExperienceLevel: []LevelCount{},
	}
	for _, r := range rows {
		st.ByCategory = append(st.ByCategory, CategoryCount{Category: r.Category, Count: 1})
		st.ByEmploymentType = append(st.ByEmploymentType, TypeCount{Type: r.EmploymentType, Count: 1})
		st.ByExperienceLevel = append(st.ByExperienceLevel, LevelCount{Level: r.ExperienceLevel, Count: 1})
	}
	return st, nil
}
