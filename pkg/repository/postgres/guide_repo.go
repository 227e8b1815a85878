package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumic/backend/pkg/guide"
)

// GuideRepository implements guide.Repository backed by PostgreSQL (pgx).
type GuideRepository struct {
	pool *pgxpool.Pool
}

func NewGuideRepository(pool *pgxpool.Pool) *GuideRepository {
	return &GuideRepository{pool: pool}
}

const guideColumns = `id, title, description, duration, difficulty, category, author,
	image_url, topics, featured, slug, content, video_url, downloads, rating,
	created_at, updated_at`

func buildGuideWhere(f guide.Filter) (string, []any) {
	var conds []string
	var args []any
	if f.Category != "" {
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, f.Category)
	}
	if f.Difficulty != "" {
		conds = append(conds, fmt.Sprintf("difficulty = $%d", len(args)+1))
		args = append(args, f.Difficulty)
	}
	if f.FeaturedOnly {
		conds = append(conds, "featured = TRUE")
	}
	if f.Search != "" {
		conds = append(conds, fmt.Sprintf("search_tsv @@ plainto_tsquery('english', $%d)", len(args)+1))
		args = append(args, f.Search)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *GuideRepository) List(ctx context.Context, f guide.Filter, limit, offset int) ([]guide.Guide, error) {
	where, args := buildGuideWhere(f)
	q := fmt.Sprintf(`
SELECT id, title, description, duration, difficulty, category, author,
	image_url, topics, featured, slug, '' AS content, video_url, downloads, rating,
	created_at, updated_at
FROM guides %s
ORDER BY featured DESC, created_at DESC
LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []guide.Guide
	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	return res, rows.Err()
}

func (r *GuideRepository) Count(ctx context.Context, f guide.Filter) (int, error) {
	where, args := buildGuideWhere(f)
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM guides `+where, args...).Scan(&total)
	return total, err
}

func (r *GuideRepository) GetBySlug(ctx context.Context, slug string) (guide.Guide, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE guides SET downloads = downloads + 1 WHERE slug = $1
RETURNING `+guideColumns, slug)
	g, err := scanGuide(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return guide.Guide{}, guide.ErrNotFound
		}
		return guide.Guide{}, err
	}
	return g, nil
}

func (r *GuideRepository) Featured(ctx context.Context) (guide.Guide, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+guideColumns+` FROM guides WHERE featured = TRUE ORDER BY created_at DESC LIMIT 1`)
	g, err := scanGuide(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return guide.Guide{}, guide.ErrNotFound
		}
		return guide.Guide{}, err
	}
	return g, nil
}

func (r *GuideRepository) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT category FROM guides ORDER BY category`)
}

func (r *GuideRepository) Difficulties(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT difficulty FROM guides ORDER BY difficulty`)
}

func (r *GuideRepository) distinct(ctx context.Context, q string) ([]string, error) {
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vals []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, rows.Err()
}

func scanGuide(row pgx.Row) (guide.Guide, error) {
	var g guide.Guide
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Duration, &g.Difficulty, &g.Category,
		&g.Author, &g.ImageURL, &g.Topics, &g.Featured, &g.Slug, &g.Content, &g.VideoURL,
		&g.Downloads, &g.Rating, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return guide.Guide{}, err
	}
	g.CreatedAt = g.CreatedAt.UTC()
	g.UpdatedAt = g.UpdatedAt.UTC()
	return g, nil
}
