package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListingValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *Listing)
		wantErr bool
	}{
		{"complete listing", func(l *Listing) {}, false},
		{"optional fields may be empty", func(l *Listing) {
			l.SalaryRange = ""
			l.EducationLevel = ""
			l.ApplicationDeadline = nil
			l.Requirements.Preferred = nil
		}, false},
		{"missing title", func(l *Listing) { l.JobTitle = "" }, true},
		{"missing company", func(l *Listing) { l.CompanyName = "" }, true},
		{"missing overview", func(l *Listing) { l.CompanyOverview = "" }, true},
		{"missing location", func(l *Listing) { l.Location = "" }, true},
		{"missing description", func(l *Listing) { l.JobDescription = "" }, true},
		{"missing application link", func(l *Listing) { l.ApplicationLink = "" }, true},
		{"unknown employment type", func(l *Listing) { l.EmploymentType = "Gig" }, true},
		{"unknown experience level", func(l *Listing) { l.ExperienceLevel = "Junior" }, true},
		{"unknown category", func(l *Listing) { l.Category = "Engineering" }, true},
		{"category is case sensitive", func(l *Listing) { l.Category = "Tech" }, true},
		{"no responsibilities", func(l *Listing) { l.Responsibilities = nil }, true},
		{"empty responsibility entry", func(l *Listing) { l.Responsibilities = []string{""} }, true},
		{"no required qualifications", func(l *Listing) { l.Requirements.Required = []string{} }, true},
		{"empty required entry", func(l *Listing) { l.Requirements.Required = []string{""} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validListing()
			tt.mutate(&l)
			err := l.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPatchApply(t *testing.T) {
	base := validListing()
	base.ApplyClickCount = 3

	t.Run("empty patch changes nothing", func(t *testing.T) {
		assert.Equal(t, base, Patch{}.Apply(base))
	})

	t.Run("set fields replace, unset fields survive", func(t *testing.T) {
		title := "Platform Engineer"
		location := "Remote"
		remote := false
		deadline := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		got := Patch{
			JobTitle:            &title,
			Location:            &location,
			IsRemote:            &remote,
			ApplicationDeadline: &deadline,
		}.Apply(base)

		assert.Equal(t, "Platform Engineer", got.JobTitle)
		assert.Equal(t, "Remote", got.Location)
		assert.False(t, got.IsRemote)
		assert.Equal(t, &deadline, got.ApplicationDeadline)
		assert.Equal(t, base.CompanyName, got.CompanyName)
		assert.Equal(t, base.Requirements, got.Requirements)
		assert.Equal(t, 3, got.ApplyClickCount)
		assert.Equal(t, base.ID, got.ID)
	})

	t.Run("explicit empty slice replaces", func(t *testing.T) {
		empty := []string{}
		got := Patch{Responsibilities: &empty}.Apply(base)
		assert.Empty(t, got.Responsibilities)
	})
}
