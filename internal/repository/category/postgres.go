package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"legal-catalog/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const categoryColumns = `id, name_id, name_en, description_id, description_en, created_at`

func (r *postgresRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name_id, name_en, description_id, description_en)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`
	out := c
	err := r.pool.QueryRow(ctx, q, c.NameID, c.NameEN, c.DescriptionID, c.DescriptionEN).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Error("category repo: create failed", zap.String("name_id", c.NameID), zap.Error(err))
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	q := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name_id ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("category repo: list failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.NameID, &c.NameEN, &c.DescriptionID, &c.DescriptionEN, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("category repo: list rows failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	q := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&c.ID, &c.NameID, &c.NameEN, &c.DescriptionID, &c.DescriptionEN, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("category repo: get failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// Update applies only the fields the patch provides. Callers are expected to
// skip the call entirely for an empty patch.
func (r *postgresRepo) Update(ctx context.Context, id int, patch domain.CategoryPatch) (*domain.Category, error) {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.NameID.Set {
		add("name_id", patch.NameID.Value)
	}
	if patch.NameEN.Set {
		add("name_en", patch.NameEN.Value)
	}
	if patch.DescriptionID.Set {
		add("description_id", patch.DescriptionID.Value)
	}
	if patch.DescriptionEN.Set {
		add("description_en", patch.DescriptionEN.Value)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(
		`UPDATE categories SET %s WHERE id = $%d RETURNING `+categoryColumns,
		strings.Join(sets, ", "), len(args),
	)

	var c domain.Category
	err := r.pool.QueryRow(ctx, q, args...).
		Scan(&c.ID, &c.NameID, &c.NameEN, &c.DescriptionID, &c.DescriptionEN, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("category repo: update failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("category repo: delete failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
