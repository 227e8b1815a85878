package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumic/backend/pkg/faq"
)

// FAQRepository implements faq.Repository backed by PostgreSQL (pgx).
type FAQRepository struct {
	pool *pgxpool.Pool
}

func NewFAQRepository(pool *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{pool: pool}
}

func buildFAQWhere(f faq.Filter) (string, []any) {
	var conds []string
	var args []any
	if f.Category != "" {
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, f.Category)
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

func (r *FAQRepository) List(ctx context.Context, f faq.Filter, limit, offset int) ([]faq.FAQ, error) {
	where, args := buildFAQWhere(f)
	q := fmt.Sprintf(`
SELECT id, question, answer, category, tags, helpful, not_helpful, display_order,
	created_at, updated_at
FROM faqs %s
ORDER BY display_order, category
LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []faq.FAQ
	for rows.Next() {
		var q faq.FAQ
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Tags,
			&q.Helpful, &q.NotHelpful, &q.Order, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		q.CreatedAt = q.CreatedAt.UTC()
		q.UpdatedAt = q.UpdatedAt.UTC()
		res = append(res, q)
	}
	return res, rows.Err()
}

func (r *FAQRepository) Count(ctx context.Context, f faq.Filter) (int, error) {
	where, args := buildFAQWhere(f)
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM faqs `+where, args...).Scan(&total)
	return total, err
}
