package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumic/backend/pkg/job"
)

// JobRepository implements job.Repository backed by PostgreSQL (pgx).
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, job_title, company_name, company_overview, location, employment_type,
	salary_range, job_description, responsibilities, requirements, application_deadline,
	application_link, education_level, experience_level, category,
	is_remote, is_hybrid, is_onsite, apply_click_count, is_active, created_at, updated_at`

// buildListWhere maps a typed filter to a WHERE clause over active listings.
// Every present filter ANDs with the rest; is_active = TRUE is always applied.
func buildListWhere(f job.Filter) (string, []any) {
	conds := []string{"is_active = TRUE"}
	var args []any

	next := func() int { return len(args) + 1 }
	if f.Search != "" {
		conds = append(conds, fmt.Sprintf("search_tsv @@ plainto_tsquery('english', $%d)", next()))
		args = append(args, f.Search)
	}
	if f.Category != "" {
		conds = append(conds, fmt.Sprintf("category = $%d", next()))
		args = append(args, f.Category)
	}
	if f.Location != "" {
		conds = append(conds, fmt.Sprintf("location ILIKE '%%' || $%d || '%%'", next()))
		args = append(args, f.Location)
	}
	if f.EmploymentType != "" {
		conds = append(conds, fmt.Sprintf("employment_type = $%d", next()))
		args = append(args, f.EmploymentType)
	}
	if f.ExperienceLevel != "" {
		conds = append(conds, fmt.Sprintf("experience_level = $%d", next()))
		args = append(args, f.ExperienceLevel)
	}
	if f.RemoteOnly {
		conds = append(conds, "is_remote = TRUE")
	}
	if f.HybridOnly {
		conds = append(conds, "is_hybrid = TRUE")
	}
	if f.OnsiteOnly {
		conds = append(conds, "is_onsite = TRUE")
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *JobRepository) Create(ctx context.Context, l job.Listing) (job.Listing, error) {
	reqJSON, err := json.Marshal(l.Requirements)
	if err != nil {
		return job.Listing{}, fmt.Errorf("marshal requirements: %w", err)
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO jobs (id, job_title, company_name, company_overview, location, employment_type,
	salary_range, job_description, responsibilities, requirements, application_deadline,
	application_link, education_level, experience_level, category,
	is_remote, is_hybrid, is_onsite, apply_click_count, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
RETURNING created_at, updated_at
`, l.ID, l.JobTitle, l.CompanyName, l.CompanyOverview, l.Location, l.EmploymentType,
		l.SalaryRange, l.JobDescription, l.Responsibilities, reqJSON, l.ApplicationDeadline,
		l.ApplicationLink, l.EducationLevel, l.ExperienceLevel, l.Category,
		l.IsRemote, l.IsHybrid, l.IsOnsite, l.ApplyClickCount, l.IsActive)
	if err := row.Scan(&l.CreatedAt, &l.UpdatedAt); err != nil {
		return job.Listing{}, err
	}
	return l, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) List(ctx context.Context, f job.Filter, limit, offset int) ([]job.Listing, error) {
	where, args := buildListWhere(f)
	// id breaks createdAt ties so pages never overlap or skip rows.
	q := fmt.Sprintf(`SELECT %s FROM jobs %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []job.Listing
	for rows.Next() {
		l, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}

func (r *JobRepository) Count(ctx context.Context, f job.Filter) (int, error) {
	where, args := buildListWhere(f)
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs `+where, args...).Scan(&total)
	return total, err
}

func (r *JobRepository) Update(ctx context.Context, l job.Listing) (job.Listing, error) {
	reqJSON, err := json.Marshal(l.Requirements)
	if err != nil {
		return job.Listing{}, fmt.Errorf("marshal requirements: %w", err)
	}
	row := r.pool.QueryRow(ctx, `
UPDATE jobs SET
	job_title = $2, company_name = $3, company_overview = $4, location = $5,
	employment_type = $6, salary_range = $7, job_description = $8,
	responsibilities = $9, requirements = $10, application_deadline = $11,
	application_link = $12, education_level = $13, experience_level = $14,
	category = $15, is_remote = $16, is_hybrid = $17, is_onsite = $18,
	is_active = $19, updated_at = now()
WHERE id = $1
RETURNING apply_click_count, created_at, updated_at
`, l.ID, l.JobTitle, l.CompanyName, l.CompanyOverview, l.Location,
		l.EmploymentType, l.SalaryRange, l.JobDescription,
		l.Responsibilities, reqJSON, l.ApplicationDeadline,
		l.ApplicationLink, l.EducationLevel, l.ExperienceLevel,
		l.Category, l.IsRemote, l.IsHybrid, l.IsOnsite, l.IsActive)
	if err := row.Scan(&l.ApplyClickCount, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Listing{}, job.ErrNotFound
		}
		return job.Listing{}, err
	}
	return l, nil
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

// IncrementApplyClicks advances the counter in a single UPDATE so concurrent
// clicks on the same listing can never lose an increment.
func (r *JobRepository) IncrementApplyClicks(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE jobs SET apply_click_count = apply_click_count + 1, updated_at = now()
WHERE id = $1
RETURNING `+jobColumns, id)
	return scanJob(row)
}

func (r *JobRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM jobs ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *JobRepository) StatsRows(ctx context.Context) ([]job.StatsRow, error) {
	rows, err := r.pool.Query(ctx, `
SELECT category, employment_type, experience_level FROM jobs WHERE is_active = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []job.StatsRow
	for rows.Next() {
		var sr job.StatsRow
		if err := rows.Scan(&sr.Category, &sr.EmploymentType, &sr.ExperienceLevel); err != nil {
			return nil, err
		}
		res = append(res, sr)
	}
	return res, rows.Err()
}

func scanJob(row pgx.Row) (job.Listing, error) {
	var l job.Listing
	var reqJSON []byte
	err := row.Scan(&l.ID, &l.JobTitle, &l.CompanyName, &l.CompanyOverview, &l.Location,
		&l.EmploymentType, &l.SalaryRange, &l.JobDescription, &l.Responsibilities, &reqJSON,
		&l.ApplicationDeadline, &l.ApplicationLink, &l.EducationLevel, &l.ExperienceLevel,
		&l.Category, &l.IsRemote, &l.IsHybrid, &l.IsOnsite, &l.ApplyClickCount, &l.IsActive,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Listing{}, job.ErrNotFound
		}
		return job.Listing{}, err
	}
	if err := json.Unmarshal(reqJSON, &l.Requirements); err != nil {
		return job.Listing{}, fmt.Errorf("unmarshal requirements: %w", err)
	}
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return l, nil
}
