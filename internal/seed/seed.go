package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	NameID        string
	NameEN        string
	DescriptionID string
	DescriptionEN string
}

type documentSeed struct {
	Category       string // category NameID
	TitleID        string
	TitleEN        string
	ContentID      string
	ContentEN      string
	DocumentType   string
	DocumentNumber string
	Tags           []string
	IsPublished    bool
}

// Apply inserts demo catalog data for manual testing. It is idempotent:
// rows are matched on their Indonesian name/title.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{
			NameID:        "Hukum Pidana",
			NameEN:        "Criminal Law",
			DescriptionID: "Peraturan dan putusan di bidang hukum pidana",
			DescriptionEN: "Regulations and rulings in the field of criminal law",
		},
		{
			NameID:        "Hukum Perdata",
			NameEN:        "Civil Law",
			DescriptionID: "Peraturan dan putusan di bidang hukum perdata",
			DescriptionEN: "Regulations and rulings in the field of civil law",
		},
	}

	ids := make(map[string]int, len(categories))
	for _, c := range categories {
		id, err := ensureCategory(ctx, pool, c)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", c.NameID, err)
		}
		ids[c.NameID] = id
	}

	documents := []documentSeed{
		{
			Category:       "Hukum Pidana",
			TitleID:        "Undang-Undang Pemberantasan Tindak Pidana Korupsi",
			TitleEN:        "Law on the Eradication of Corruption",
			ContentID:      "Ketentuan mengenai pemberantasan tindak pidana korupsi.",
			ContentEN:      "Provisions concerning the eradication of corruption offenses.",
			DocumentType:   "law",
			DocumentNumber: "UU No. 31 Tahun 1999",
			Tags:           []string{"korupsi", "pidana"},
			IsPublished:    true,
		},
		{
			Category:     "Hukum Perdata",
			TitleID:      "Pengantar Hukum Kontrak",
			TitleEN:      "Introduction to Contract Law",
			ContentID:    "Ulasan mengenai asas-asas hukum kontrak di Indonesia.",
			ContentEN:    "An overview of the principles of contract law in Indonesia.",
			DocumentType: "article",
			Tags:         []string{"kontrak", "perdata"},
			IsPublished:  true,
		},
		{
			Category:     "Hukum Pidana",
			TitleID:      "Putusan Mahkamah Agung tentang Kasasi Pidana",
			TitleEN:      "Supreme Court Decision on Criminal Cassation",
			ContentID:    "Putusan kasasi dalam perkara pidana.",
			ContentEN:    "A cassation ruling in a criminal case.",
			DocumentType: "decision",
			Tags:         []string{"putusan", "kasasi"},
			IsPublished:  false,
		},
	}

	for _, d := range documents {
		if err := ensureDocument(ctx, pool, ids[d.Category], d); err != nil {
			return fmt.Errorf("ensure document %s: %w", d.TitleID, err)
		}
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (int, error) {
	var id int
	err := pool.QueryRow(ctx, `SELECT id FROM categories WHERE name_id = $1`, c.NameID).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = pool.QueryRow(ctx, `
INSERT INTO categories (name_id, name_en, description_id, description_en)
VALUES ($1, $2, $3, $4)
RETURNING id
`, c.NameID, c.NameEN, c.DescriptionID, c.DescriptionEN).Scan(&id)
	return id, err
}

func ensureDocument(ctx context.Context, pool *pgxpool.Pool, categoryID int, d documentSeed) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM legal_documents WHERE title_id = $1)`, d.TitleID,
	).Scan(&exists)
	if err != nil || exists {
		return err
	}

	var number *string
	if d.DocumentNumber != "" {
		number = &d.DocumentNumber
	}
	_, err = pool.Exec(ctx, `
INSERT INTO legal_documents (title_id, title_en, content_id, content_en,
	document_type, category_id, document_number, tags, is_published)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, d.TitleID, d.TitleEN, d.ContentID, d.ContentEN, d.DocumentType, categoryID, number, d.Tags, d.IsPublished)
	return err
}
