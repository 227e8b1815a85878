package job

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo scripts Repository behavior per test via function fields.
type stubRepo struct {
	create          func(ctx context.Context, l Listing) (Listing, error)
	getByID         func(ctx context.Context, id uuid.UUID) (Listing, error)
	list            func(ctx context.Context, f Filter, limit, offset int) ([]Listing, error)
	count           func(ctx context.Context, f Filter) (int, error)
	update          func(ctx context.Context, l Listing) (Listing, error)
	delete          func(ctx context.Context, id uuid.UUID) error
	incrementClicks func(ctx context.Context, id uuid.UUID) (Listing, error)
	categories      func(ctx context.Context) ([]string, error)
	statsRows       func(ctx context.Context) ([]StatsRow, error)
}

func (s *stubRepo) Create(ctx context.Context, l Listing) (Listing, error) { return s.create(ctx, l) }
func (s *stubRepo) GetByID(ctx context.Context, id uuid.UUID) (Listing, error) {
	return s.getByID(ctx, id)
}
func (s *stubRepo) List(ctx context.Context, f Filter, limit, offset int) ([]Listing, error) {
	return s.list(ctx, f, limit, offset)
}
func (s *stubRepo) Count(ctx context.Context, f Filter) (int, error) { return s.count(ctx, f) }
func (s *stubRepo) Update(ctx context.Context, l Listing) (Listing, error) {
	return s.update(ctx, l)
}
func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error { return s.delete(ctx, id) }
func (s *stubRepo) IncrementApplyClicks(ctx context.Context, id uuid.UUID) (Listing, error) {
	return s.incrementClicks(ctx, id)
}
func (s *stubRepo) Categories(ctx context.Context) ([]string, error) { return s.categories(ctx) }
func (s *stubRepo) StatsRows(ctx context.Context) ([]StatsRow, error) {
	return s.statsRows(ctx)
}

func validListing() Listing {
	return Listing{
		ID:               uuid.New(),
		JobTitle:         "Backend Engineer",
		CompanyName:      "Acme",
		CompanyOverview:  "We build things",
		Location:         "Berlin, Germany",
		EmploymentType:   "Full-time",
		JobDescription:   "Build and run services",
		Responsibilities: []string{"Design APIs"},
		Requirements:     Requirements{Required: []string{"Go"}},
		ApplicationLink:  "https://acme.example/apply",
		ExperienceLevel:  "Mid-level",
		Category:         "tech",
		IsRemote:         true,
		IsActive:         true,
	}
}

func makeListings(n int) []Listing {
	out := make([]Listing, 0, n)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		l := validListing()
		l.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		out = append(out, l)
	}
	return out
}

func TestList_PageAndLimitClamping(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"zero page becomes first", 0, 5, 1, 5},
		{"negative page becomes first", -3, 5, 1, 5},
		{"zero limit falls back to default", 2, 0, 2, 3},
		{"negative limit falls back to default", 1, -1, 1, 3},
		{"oversized limit capped", 1, 1000, 1, 100},
		{"in-range values pass through", 4, 10, 4, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit, gotOffset int
			repo := &stubRepo{
				list: func(_ context.Context, _ Filter, limit, offset int) ([]Listing, error) {
					gotLimit, gotOffset = limit, offset
					return nil, nil
				},
				count: func(context.Context, Filter) (int, error) { return 0, nil },
			}
			page, err := NewService(repo).List(context.Background(), Filter{}, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
			assert.Equal(t, (tt.wantPage-1)*tt.wantLimit, gotOffset)
			assert.Equal(t, tt.wantPage, page.Pagination.CurrentPage)
		})
	}
}

func TestList_PaginationMetadata(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		returned  int
		total     int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"first of many", 1, 3, 3, 10, 4, true, false},
		{"middle page", 2, 3, 3, 10, 4, true, true},
		{"last full page", 4, 3, 1, 10, 4, false, true},
		{"exact multiple", 2, 5, 5, 10, 2, false, true},
		{"single page", 1, 10, 4, 4, 1, false, false},
		{"empty set", 1, 3, 0, 0, 0, false, false},
		{"page past the end", 5, 3, 0, 10, 4, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{
				list: func(context.Context, Filter, int, int) ([]Listing, error) {
					return makeListings(tt.returned), nil
				},
				count: func(context.Context, Filter) (int, error) { return tt.total, nil },
			}
			page, err := NewService(repo).List(context.Background(), Filter{}, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Len(t, page.Jobs, tt.returned)
			assert.Equal(t, tt.page, page.Pagination.CurrentPage)
			assert.Equal(t, tt.wantPages, page.Pagination.TotalPages)
			assert.Equal(t, tt.total, page.Pagination.TotalJobs)
			assert.Equal(t, tt.wantNext, page.Pagination.HasNext)
			assert.Equal(t, tt.wantPrev, page.Pagination.HasPrev)
		})
	}
}

// A concurrent delete can shrink the set between fetching the page and
// counting the total. hasNext must reflect the fresh count, not stale
// page arithmetic.
func TestList_HasNextAfterConcurrentShrink(t *testing.T) {
	repo := &stubRepo{
		list: func(context.Context, Filter, int, int) ([]Listing, error) {
			// Page 2 of limit 3 captured while 7 rows still existed.
			return makeListings(3), nil
		},
		count: func(context.Context, Filter) (int, error) { return 6, nil },
	}
	page, err := NewService(repo).List(context.Background(), Filter{}, 2, 3)
	require.NoError(t, err)
	assert.False(t, page.Pagination.HasNext)
	assert.Equal(t, 6, page.Pagination.TotalJobs)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestList_EmptyResultIsNotNil(t *testing.T) {
	repo := &stubRepo{
		list:  func(context.Context, Filter, int, int) ([]Listing, error) { return nil, nil },
		count: func(context.Context, Filter) (int, error) { return 0, nil },
	}
	page, err := NewService(repo).List(context.Background(), Filter{}, 1, 3)
	require.NoError(t, err)
	require.NotNil(t, page.Jobs)
	assert.Empty(t, page.Jobs)
}

func TestCreate_ForcesServerOwnedFields(t *testing.T) {
	var stored Listing
	repo := &stubRepo{
		create: func(_ context.Context, l Listing) (Listing, error) {
			stored = l
			return l, nil
		},
	}
	in := validListing()
	in.JobTitle = "  Backend Engineer  "
	in.ApplyClickCount = 42
	in.IsActive = false

	out, err := NewService(repo).Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", stored.JobTitle)
	assert.Zero(t, stored.ApplyClickCount)
	assert.True(t, stored.IsActive)
	assert.Equal(t, stored, out)
}

func TestCreate_RejectsInvalidListing(t *testing.T) {
	repo := &stubRepo{
		create: func(_ context.Context, l Listing) (Listing, error) {
			t.Fatal("create must not reach the repository")
			return l, nil
		},
	}
	svc := NewService(repo)

	in := validListing()
	in.EmploymentType = "Gig"
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validListing()
	in.Requirements.Required = nil
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_MergesPatchOntoStored(t *testing.T) {
	current := validListing()
	current.ApplyClickCount = 7

	var updated Listing
	repo := &stubRepo{
		getByID: func(context.Context, uuid.UUID) (Listing, error) { return current, nil },
		update: func(_ context.Context, l Listing) (Listing, error) {
			updated = l
			return l, nil
		},
	}

	title := "Staff Engineer"
	active := false
	_, err := NewService(repo).Update(context.Background(), current.ID, Patch{
		JobTitle: &title,
		IsActive: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.JobTitle)
	assert.False(t, updated.IsActive)
	// Untouched fields survive the merge.
	assert.Equal(t, current.CompanyName, updated.CompanyName)
	assert.Equal(t, 7, updated.ApplyClickCount)
}

func TestUpdate_RevalidatesMergedRecord(t *testing.T) {
	repo := &stubRepo{
		getByID: func(context.Context, uuid.UUID) (Listing, error) { return validListing(), nil },
		update: func(_ context.Context, l Listing) (Listing, error) {
			t.Fatal("invalid merge must not be persisted")
			return l, nil
		},
	}
	bad := "Volunteer"
	_, err := NewService(repo).Update(context.Background(), uuid.New(), Patch{EmploymentType: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_MissingListing(t *testing.T) {
	repo := &stubRepo{
		getByID: func(context.Context, uuid.UUID) (Listing, error) { return Listing{}, ErrNotFound },
	}
	_, err := NewService(repo).Update(context.Background(), uuid.New(), Patch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordApplyClick(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{
		incrementClicks: func(_ context.Context, got uuid.UUID) (Listing, error) {
			assert.Equal(t, id, got)
			l := validListing()
			l.ApplyClickCount = 5
			return l, nil
		},
	}
	l, err := NewService(repo).RecordApplyClick(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, l.ApplyClickCount)

	repo.incrementClicks = func(context.Context, uuid.UUID) (Listing, error) {
		return Listing{}, ErrNotFound
	}
	_, err = NewService(repo).RecordApplyClick(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategories_EmptyIsNotNil(t *testing.T) {
	repo := &stubRepo{
		categories: func(context.Context) ([]string, error) { return nil, nil },
	}
	cats, err := NewService(repo).Categories(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cats)
	assert.Empty(t, cats)
}

// The breakdowns carry one marker per listing with count 1 rather than
// reduced sums; clients consuming the original API depend on that shape.
func TestStats_PerListingMarkers(t *testing.T) {
	repo := &stubRepo{
		statsRows: func(context.Context) ([]StatsRow, error) {
			return []StatsRow{
				{Category: "tech", EmploymentType: "Full-time", ExperienceLevel: "Senior"},
				{Category: "tech", EmploymentType: "Contract", ExperienceLevel: "Mid-level"},
				{Category: "sales", EmploymentType: "Full-time", ExperienceLevel: "Senior"},
			}, nil
		},
	}
	st, err := NewService(repo).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalJobs)
	assert.Equal(t, []CategoryCount{
		{Category: "tech", Count: 1},
		{Category: "tech", Count: 1},
		{Category: "sales", Count: 1},
	}, st.ByCategory)
	assert.Len(t, st.ByEmploymentType, 3)
	assert.Len(t, st.ByExperienceLevel, 3)
	for _, tc := range st.ByEmploymentType {
		assert.Equal(t, 1, tc.Count)
	}
}

func TestStats_EmptySet(t *testing.T) {
	repo := &stubRepo{
		statsRows: func(context.Context) ([]StatsRow, error) { return nil, nil },
	}
	st, err := NewService(repo).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.TotalJobs)
	assert.NotNil(t, st.ByCategory)
	assert.NotNil(t, st.ByEmploymentType)
	assert.NotNil(t, st.ByExperienceLevel)
}
