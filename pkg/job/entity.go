package job

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Common errors returned by the job domain.
var (
	ErrNotFound   = errors.New("job not found")
	ErrValidation = errors.New("invalid job listing")
)

// Requirements splits qualifications into mandatory and nice-to-have.
type Requirements struct {
	Required  []string `json:"required" validate:"required,min=1,dive,required"`
	Preferred []string `json:"preferred"`
}

// Listing is a single job posting. Validation tags mirror the persistence
// invariants: required text fields, closed enum sets, at least one
// responsibility and one required qualification.
type Listing struct {
	ID                  uuid.UUID    `json:"id"`
	JobTitle            string       `json:"jobTitle" validate:"required"`
	CompanyName         string       `json:"companyName" validate:"required"`
	CompanyOverview     string       `json:"companyOverview" validate:"required"`
	Location            string       `json:"location" validate:"required"`
	EmploymentType      string       `json:"employmentType" validate:"required,oneof=Full-time Part-time Contract Internship Freelance"`
	SalaryRange         string       `json:"salaryRange,omitempty"`
	JobDescription      string       `json:"jobDescription" validate:"required"`
	Responsibilities    []string     `json:"responsibilities" validate:"required,min=1,dive,required"`
	Requirements        Requirements `json:"requirements"`
	ApplicationDeadline *time.Time   `json:"applicationDeadline,omitempty"`
	ApplicationLink     string       `json:"applicationLink" validate:"required"`
	EducationLevel      string       `json:"educationLevel,omitempty"`
	ExperienceLevel     string       `json:"experienceLevel" validate:"required,oneof=Entry-level Mid-level Senior Executive"`
	Category            string       `json:"category" validate:"required,oneof=tech sales marketing design product operations finance hr other"`
	IsRemote            bool         `json:"isRemote"`
	IsHybrid            bool         `json:"isHybrid"`
	IsOnsite            bool         `json:"isOnsite"`
	ApplyClickCount     int          `json:"applyClickCount"`
	IsActive            bool         `json:"isActive"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

var validate = validator.New()

// Validate checks the listing against the schema invariants.
// The returned error wraps ErrValidation and carries per-field details.
func (l *Listing) Validate() error {
	if err := validate.Struct(l); err != nil {
		return errors.Join(ErrValidation, err)
	}
	return nil
}

// Filter narrows the listing set. Zero values impose no constraint;
// the work-arrangement booleans only ever filter for true, there is no
// way to select listings where a flag is false.
type Filter struct {
	Search          string
	Category        string
	Location        string
	EmploymentType  string
	ExperienceLevel string
	RemoteOnly      bool
	HybridOnly      bool
	OnsiteOnly      bool
}

// Pagination describes the position of a page within the filtered set.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalJobs   int  `json:"totalJobs"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// Page is one window of the filtered, newest-first listing set.
type Page struct {
	Jobs       []Listing  `json:"jobs"`
	Pagination Pagination `json:"pagination"`
}

// CategoryCount, TypeCount and LevelCount are per-listing markers in the
// stats breakdowns: one element per active listing with Count fixed at 1.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// Stats is an aggregate snapshot over active listings.
type Stats struct {
	TotalJobs         int             `json:"totalJobs"`
	ByCategory        []CategoryCount `json:"byCategory"`
	ByEmploymentType  []TypeCount     `json:"byEmploymentType"`
	ByExperienceLevel []LevelCount    `json:"byExperienceLevel"`
}

// StatsRow is the dimension tuple of one active listing.
type StatsRow struct {
	Category        string
	EmploymentType  string
	ExperienceLevel string
}

// Repository is the persistence port for job listings.
type Repository interface {
	Create(ctx context.Context, l Listing) (Listing, error)
	// GetByID resolves a listing regardless of its active flag.
	GetByID(ctx context.Context, id uuid.UUID) (Listing, error)
	// List returns the [offset, offset+limit) window of active listings
	// matching the filter, newest first.
	List(ctx context.Context, f Filter, limit, offset int) ([]Listing, error)
	// Count returns the size of the full filtered set of active listings.
	Count(ctx context.Context, f Filter) (int, error)
	// Update replaces every mutable field of the stored listing.
	Update(ctx context.Context, l Listing) (Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementApplyClicks applies a store-side atomic +1 and returns the
	// post-increment listing. Never read-modify-write.
	IncrementApplyClicks(ctx context.Context, id uuid.UUID) (Listing, error)
	// Categories lists distinct category values across all listings,
	// inactive ones included.
	Categories(ctx context.Context) ([]string, error)
	// StatsRows returns one row per active listing.
	StatsRows(ctx context.Context) ([]StatsRow, error)
}
