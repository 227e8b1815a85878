package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumic/backend/pkg/blog"
)

// BlogRepository implements blog.Repository backed by PostgreSQL (pgx).
type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

const blogColumns = `id, title, excerpt, content, author, date, read_time, category,
	image_url, featured, slug, tags, views, created_at, updated_at`

func buildBlogWhere(f blog.Filter) (string, []any) {
	var conds []string
	var args []any
	if f.Category != "" {
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, f.Category)
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

func (r *BlogRepository) List(ctx context.Context, f blog.Filter, limit, offset int) ([]blog.Post, error) {
	where, args := buildBlogWhere(f)
	// List views carry an empty content column to keep payloads small.
	q := fmt.Sprintf(`
SELECT id, title, excerpt, '' AS content, author, date, read_time, category,
	image_url, featured, slug, tags, views, created_at, updated_at
FROM blog_posts %s
ORDER BY date DESC, featured DESC
LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []blog.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *BlogRepository) Count(ctx context.Context, f blog.Filter) (int, error) {
	where, args := buildBlogWhere(f)
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts `+where, args...).Scan(&total)
	return total, err
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (blog.Post, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE blog_posts SET views = views + 1 WHERE slug = $1
RETURNING `+blogColumns, slug)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blog.Post{}, blog.ErrNotFound
		}
		return blog.Post{}, err
	}
	return p, nil
}

func (r *BlogRepository) Featured(ctx context.Context) (blog.Post, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+blogColumns+` FROM blog_posts WHERE featured = TRUE ORDER BY date DESC LIMIT 1`)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blog.Post{}, blog.ErrNotFound
		}
		return blog.Post{}, err
	}
	return p, nil
}

func (r *BlogRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM blog_posts ORDER BY category`)
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

func scanPost(row pgx.Row) (blog.Post, error) {
	var p blog.Post
	err := row.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Author, &p.Date, &p.ReadTime,
		&p.Category, &p.ImageURL, &p.Featured, &p.Slug, &p.Tags, &p.Views, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return blog.Post{}, err
	}
	p.Date = p.Date.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
