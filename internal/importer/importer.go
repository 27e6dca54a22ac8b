package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"legal-catalog/internal/domain"
)

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
}

type DocumentWriter interface {
	Create(ctx context.Context, d domain.LegalDocument) (*domain.LegalDocument, error)
}

// JSONImporter bulk-loads legal documents from a JSON export: a top-level
// array of document records carrying their category's bilingual name.
// Categories are created on first sight, matched by Indonesian name.
type JSONImporter struct {
	dec        *json.Decoder
	categories CategoryStore
	documents  DocumentWriter
}

func NewJSONImporter(r io.Reader, categories CategoryStore, documents DocumentWriter) *JSONImporter {
	return &JSONImporter{
		dec:        json.NewDecoder(r),
		categories: categories,
		documents:  documents,
	}
}

type documentRecord struct {
	CategoryNameID  string     `json:"category_name_id"`
	CategoryNameEN  string     `json:"category_name_en"`
	TitleID         string     `json:"title_id"`
	TitleEN         string     `json:"title_en"`
	ContentID       string     `json:"content_id"`
	ContentEN       string     `json:"content_en"`
	SummaryID       *string    `json:"summary_id"`
	SummaryEN       *string    `json:"summary_en"`
	DocumentType    string     `json:"document_type"`
	DocumentNumber  *string    `json:"document_number"`
	PublicationDate *time.Time `json:"publication_date"`
	EffectiveDate   *time.Time `json:"effective_date"`
	Tags            []string   `json:"tags"`
	FileURL         *string    `json:"file_url"`
	IsPublished     bool       `json:"is_published"`
}

// Run streams the array and inserts documents one by one. It returns the
// number of imported documents; a bad record aborts the run.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	tok, err := i.dec.Token()
	if err != nil {
		return 0, fmt.Errorf("read opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return 0, fmt.Errorf("expected a JSON array of documents, got %v", tok)
	}

	categoryIDs, err := i.loadCategories(ctx)
	if err != nil {
		return 0, err
	}

	imported := 0
	for i.dec.More() {
		var rec documentRecord
		if err := i.dec.Decode(&rec); err != nil {
			return imported, fmt.Errorf("decode record %d: %w", imported+1, err)
		}
		if err := i.importRecord(ctx, rec, categoryIDs); err != nil {
			return imported, fmt.Errorf("import record %d (%s): %w", imported+1, rec.TitleID, err)
		}
		imported++
	}

	if _, err := i.dec.Token(); err != nil {
		return imported, fmt.Errorf("read closing token: %w", err)
	}
	return imported, nil
}

func (i *JSONImporter) importRecord(ctx context.Context, rec documentRecord, categoryIDs map[string]int) error {
	if strings.TrimSpace(rec.TitleID) == "" || strings.TrimSpace(rec.TitleEN) == "" {
		return fmt.Errorf("both titles are required")
	}
	if strings.TrimSpace(rec.ContentID) == "" || strings.TrimSpace(rec.ContentEN) == "" {
		return fmt.Errorf("both contents are required")
	}
	if strings.TrimSpace(rec.CategoryNameID) == "" {
		return fmt.Errorf("category_name_id is required")
	}
	dt, err := domain.ParseDocumentType(rec.DocumentType)
	if err != nil {
		return err
	}

	categoryID, ok := categoryIDs[rec.CategoryNameID]
	if !ok {
		cat, err := i.categories.Create(ctx, domain.Category{
			NameID: rec.CategoryNameID,
			NameEN: rec.CategoryNameEN,
		})
		if err != nil {
			return fmt.Errorf("create category %s: %w", rec.CategoryNameID, err)
		}
		categoryID = cat.ID
		categoryIDs[rec.CategoryNameID] = categoryID
	}

	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err = i.documents.Create(ctx, domain.LegalDocument{
		TitleID:         rec.TitleID,
		TitleEN:         rec.TitleEN,
		ContentID:       rec.ContentID,
		ContentEN:       rec.ContentEN,
		SummaryID:       rec.SummaryID,
		SummaryEN:       rec.SummaryEN,
		DocumentType:    dt,
		CategoryID:      categoryID,
		DocumentNumber:  rec.DocumentNumber,
		PublicationDate: rec.PublicationDate,
		EffectiveDate:   rec.EffectiveDate,
		Tags:            tags,
		FileURL:         rec.FileURL,
		IsPublished:     rec.IsPublished,
	})
	return err
}

func (i *JSONImporter) loadCategories(ctx context.Context) (map[string]int, error) {
	existing, err := i.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	ids := make(map[string]int, len(existing))
	for _, c := range existing {
		ids[c.NameID] = c.ID
	}
	return ids, nil
}
