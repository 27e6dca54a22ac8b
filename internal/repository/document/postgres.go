package document

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

const documentColumns = `d.id, d.title_id, d.title_en, d.content_id, d.content_en,
d.summary_id, d.summary_en, d.document_type, d.category_id, d.document_number,
d.publication_date, d.effective_date, d.tags, d.file_url, d.is_published,
d.created_at, d.updated_at`

func scanDocument(row pgx.Row, d *domain.LegalDocument) error {
	return row.Scan(
		&d.ID, &d.TitleID, &d.TitleEN, &d.ContentID, &d.ContentEN,
		&d.SummaryID, &d.SummaryEN, &d.DocumentType, &d.CategoryID, &d.DocumentNumber,
		&d.PublicationDate, &d.EffectiveDate, &d.Tags, &d.FileURL, &d.IsPublished,
		&d.CreatedAt, &d.UpdatedAt,
	)
}

func scanJoined(row pgx.Row, d *domain.DocumentWithCategory) error {
	return row.Scan(
		&d.ID, &d.TitleID, &d.TitleEN, &d.ContentID, &d.ContentEN,
		&d.SummaryID, &d.SummaryEN, &d.DocumentType, &d.CategoryID, &d.DocumentNumber,
		&d.PublicationDate, &d.EffectiveDate, &d.Tags, &d.FileURL, &d.IsPublished,
		&d.CreatedAt, &d.UpdatedAt,
		&d.CategoryNameID, &d.CategoryNameEN,
	)
}

func (r *postgresRepo) Create(ctx context.Context, d domain.LegalDocument) (*domain.LegalDocument, error) {
	const q = `
INSERT INTO legal_documents (title_id, title_en, content_id, content_en,
	summary_id, summary_en, document_type, category_id, document_number,
	publication_date, effective_date, tags, file_url, is_published)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id, created_at, updated_at
`
	if d.Tags == nil {
		d.Tags = []string{}
	}
	out := d
	err := r.pool.QueryRow(ctx, q,
		d.TitleID, d.TitleEN, d.ContentID, d.ContentEN,
		d.SummaryID, d.SummaryEN, d.DocumentType, d.CategoryID, d.DocumentNumber,
		d.PublicationDate, d.EffectiveDate, d.Tags, d.FileURL, d.IsPublished,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		r.logger.Error("document repo: create failed", zap.String("title_id", d.TitleID), zap.Error(err))
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.LegalDocument, error) {
	q := `SELECT ` + documentColumns + ` FROM legal_documents d WHERE d.id = $1`
	var d domain.LegalDocument
	if err := scanDocument(r.pool.QueryRow(ctx, q, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("document repo: get failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepo) GetWithCategory(ctx context.Context, id int) (*domain.DocumentWithCategory, error) {
	q := `SELECT ` + documentColumns + `, c.name_id, c.name_en
FROM legal_documents d
JOIN categories c ON c.id = d.category_id
WHERE d.id = $1`
	var d domain.DocumentWithCategory
	if err := scanJoined(r.pool.QueryRow(ctx, q, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("document repo: get joined failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &d, nil
}

// Update applies only provided fields and always refreshes updated_at, even
// when the patch is empty.
func (r *postgresRepo) Update(ctx context.Context, id int, patch domain.DocumentPatch) (*domain.LegalDocument, error) {
	sets := []string{"updated_at = now()"}
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.TitleID.Set {
		add("title_id", patch.TitleID.Value)
	}
	if patch.TitleEN.Set {
		add("title_en", patch.TitleEN.Value)
	}
	if patch.ContentID.Set {
		add("content_id", patch.ContentID.Value)
	}
	if patch.ContentEN.Set {
		add("content_en", patch.ContentEN.Value)
	}
	if patch.SummaryID.Set {
		add("summary_id", patch.SummaryID.Value)
	}
	if patch.SummaryEN.Set {
		add("summary_en", patch.SummaryEN.Value)
	}
	if patch.DocumentType.Set {
		add("document_type", patch.DocumentType.Value)
	}
	if patch.CategoryID.Set {
		add("category_id", patch.CategoryID.Value)
	}
	if patch.DocumentNumber.Set {
		add("document_number", patch.DocumentNumber.Value)
	}
	if patch.PublicationDate.Set {
		add("publication_date", patch.PublicationDate.Value)
	}
	if patch.EffectiveDate.Set {
		add("effective_date", patch.EffectiveDate.Value)
	}
	if patch.Tags.Set {
		tags := patch.Tags.Value
		if tags == nil || *tags == nil {
			add("tags", []string{})
		} else {
			add("tags", *tags)
		}
	}
	if patch.FileURL.Set {
		add("file_url", patch.FileURL.Value)
	}
	if patch.IsPublished.Set {
		add("is_published", patch.IsPublished.Value)
	}

	args = append(args, id)
	q := fmt.Sprintf(
		`UPDATE legal_documents d SET %s WHERE d.id = $%d RETURNING `+documentColumns,
		strings.Join(sets, ", "), len(args),
	)

	var d domain.LegalDocument
	if err := scanDocument(r.pool.QueryRow(ctx, q, args...), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("document repo: update failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM legal_documents WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("document repo: delete failed", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepo) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM legal_documents WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		r.logger.Error("document repo: count by category failed", zap.Int("category_id", categoryID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *postgresRepo) ListPublishedByCategory(ctx context.Context, categoryID int) ([]domain.DocumentWithCategory, error) {
	q := `SELECT ` + documentColumns + `, c.name_id, c.name_en
FROM legal_documents d
JOIN categories c ON c.id = d.category_id
WHERE d.category_id = $1 AND d.is_published = true
ORDER BY d.created_at DESC`
	return r.queryJoined(ctx, q, categoryID)
}

func (r *postgresRepo) ListPublishedByType(ctx context.Context, dt domain.DocumentType) ([]domain.DocumentWithCategory, error) {
	q := `SELECT ` + documentColumns + `, c.name_id, c.name_en
FROM legal_documents d
JOIN categories c ON c.id = d.category_id
WHERE d.document_type = $1 AND d.is_published = true
ORDER BY d.created_at DESC`
	return r.queryJoined(ctx, q, dt)
}

// searchWhere renders the filter as an AND-joined WHERE clause. The free-text
// query matches title and content of the selected language only; the tag list
// matches documents carrying at least one of the requested tags.
func searchWhere(f domain.SearchFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.PublishedOnly {
		conds = append(conds, "d.is_published = true")
	}
	if f.DocumentType != nil {
		args = append(args, *f.DocumentType)
		conds = append(conds, fmt.Sprintf("d.document_type = $%d", len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("d.category_id = $%d", len(args)))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		if f.Language == domain.LanguageEnglish {
			conds = append(conds, fmt.Sprintf("(d.title_en ILIKE $%d OR d.content_en ILIKE $%d)", n, n))
		} else {
			conds = append(conds, fmt.Sprintf("(d.title_id ILIKE $%d OR d.content_id ILIKE $%d)", n, n))
		}
	}
	if len(f.Tags) > 0 {
		args = append(args, f.Tags)
		conds = append(conds, fmt.Sprintf("d.tags ?| $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *postgresRepo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.DocumentWithCategory, error) {
	where, args := searchWhere(f)
	args = append(args, f.Limit, f.Offset)
	q := fmt.Sprintf(`SELECT `+documentColumns+`, c.name_id, c.name_en
FROM legal_documents d
JOIN categories c ON c.id = d.category_id
%s
ORDER BY d.id ASC
LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	return r.queryJoined(ctx, q, args...)
}

func (r *postgresRepo) CountSearch(ctx context.Context, f domain.SearchFilter) (int, error) {
	where, args := searchWhere(f)
	q := `SELECT COUNT(*)
FROM legal_documents d
JOIN categories c ON c.id = d.category_id` + where

	var count int
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&count); err != nil {
		r.logger.Error("document repo: search count failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *postgresRepo) queryJoined(ctx context.Context, q string, args ...any) ([]domain.DocumentWithCategory, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Error("document repo: query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.DocumentWithCategory
	for rows.Next() {
		var d domain.DocumentWithCategory
		if err := scanJoined(rows, &d); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("document repo: rows failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}
