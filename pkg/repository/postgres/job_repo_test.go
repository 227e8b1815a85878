package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resumic/backend/pkg/job"
)

func TestBuildListWhere(t *testing.T) {
	tests := []struct {
		name     string
		filter   job.Filter
		want     string
		wantArgs []any
	}{
		{
			name:     "no filters still restricts to active",
			filter:   job.Filter{},
			want:     "WHERE is_active = TRUE",
			wantArgs: nil,
		},
		{
			name:     "search",
			filter:   job.Filter{Search: "golang backend"},
			want:     "WHERE is_active = TRUE AND search_tsv @@ plainto_tsquery('english', $1)",
			wantArgs: []any{"golang backend"},
		},
		{
			name:     "category",
			filter:   job.Filter{Category: "tech"},
			want:     "WHERE is_active = TRUE AND category = $1",
			wantArgs: []any{"tech"},
		},
		{
			name:     "location is a substring match",
			filter:   job.Filter{Location: "berlin"},
			want:     "WHERE is_active = TRUE AND location ILIKE '%' || $1 || '%'",
			wantArgs: []any{"berlin"},
		},
		{
			name:   "work arrangement flags carry no args",
			filter: job.Filter{RemoteOnly: true, HybridOnly: true, OnsiteOnly: true},
			want: "WHERE is_active = TRUE AND is_remote = TRUE" +
				" AND is_hybrid = TRUE AND is_onsite = TRUE",
			wantArgs: nil,
		},
		{
			name: "combined filters AND together with ordered placeholders",
			filter: job.Filter{
				Search:          "engineer",
				Category:        "tech",
				Location:        "remote",
				EmploymentType:  "Full-time",
				ExperienceLevel: "Senior",
				RemoteOnly:      true,
			},
			want: "WHERE is_active = TRUE" +
				" AND search_tsv @@ plainto_tsquery('english', $1)" +
				" AND category = $2" +
				" AND location ILIKE '%' || $3 || '%'" +
				" AND employment_type = $4" +
				" AND experience_level = $5" +
				" AND is_remote = TRUE",
			wantArgs: []any{"engineer", "tech", "remote", "Full-time", "Senior"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildListWhere(tt.filter)
			assert.Equal(t, tt.want, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
