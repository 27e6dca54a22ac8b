package document

import (
	"context"
	"errors"
	"strings"
	"time"

	"legal-catalog/internal/domain"
	documentrepo "legal-catalog/internal/repository/document"
)

// CategoryGetter is the slice of the category repository the document service
// needs for referential checks.
type CategoryGetter interface {
	GetByID(ctx context.Context, id int) (*domain.Category, error)
}

type Service struct {
	repo       documentrepo.Repository
	categories CategoryGetter
}

func New(repo documentrepo.Repository, categories CategoryGetter) *Service {
	return &Service{repo: repo, categories: categories}
}

type CreateInput struct {
	TitleID         string
	TitleEN         string
	ContentID       string
	ContentEN       string
	SummaryID       *string
	SummaryEN       *string
	DocumentType    domain.DocumentType
	CategoryID      int
	DocumentNumber  *string
	PublicationDate *time.Time
	EffectiveDate   *time.Time
	Tags            []string
	FileURL         *string
	IsPublished     bool
}

// Create validates the referenced category before anything is persisted; a
// dangling category_id rejects the whole request.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.LegalDocument, error) {
	for name, v := range map[string]string{
		"title_id":   in.TitleID,
		"title_en":   in.TitleEN,
		"content_id": in.ContentID,
		"content_en": in.ContentEN,
	} {
		if strings.TrimSpace(v) == "" {
			return nil, domain.Validationf("%s is required", name)
		}
	}
	if _, err := domain.ParseDocumentType(string(in.DocumentType)); err != nil {
		return nil, err
	}
	if _, err := s.categories.GetByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return s.repo.Create(ctx, domain.LegalDocument{
		TitleID:         in.TitleID,
		TitleEN:         in.TitleEN,
		ContentID:       in.ContentID,
		ContentEN:       in.ContentEN,
		SummaryID:       in.SummaryID,
		SummaryEN:       in.SummaryEN,
		DocumentType:    in.DocumentType,
		CategoryID:      in.CategoryID,
		DocumentNumber:  in.DocumentNumber,
		PublicationDate: in.PublicationDate,
		EffectiveDate:   in.EffectiveDate,
		Tags:            tags,
		FileURL:         in.FileURL,
		IsPublished:     in.IsPublished,
	})
}

// Get returns a localized view joined with the owning category. Unpublished
// documents are still reachable by id.
func (s *Service) Get(ctx context.Context, id int, lang domain.Language) (*domain.LocalizedDocument, error) {
	d, err := s.repo.GetWithCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	loc := domain.Localize(*d, lang)
	return &loc, nil
}

// Update applies a partial update. When category_id is part of the patch the
// new category must exist before the document is touched. updated_at is
// refreshed regardless of which fields changed.
func (s *Service) Update(ctx context.Context, id int, patch domain.DocumentPatch) (*domain.LegalDocument, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if patch.CategoryID.Set {
		if patch.CategoryID.Value == nil {
			return nil, domain.Validationf("category_id cannot be null")
		}
		if _, err := s.categories.GetByID(ctx, *patch.CategoryID.Value); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete reports false for an unknown id instead of failing, unlike category
// deletion.
func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// ListByCategory returns the published documents of a category, localized.
func (s *Service) ListByCategory(ctx context.Context, categoryID int, lang domain.Language) ([]domain.LocalizedDocument, error) {
	docs, err := s.repo.ListPublishedByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return localizeAll(docs, lang), nil
}

// ListByType returns the published documents of a type, localized.
func (s *Service) ListByType(ctx context.Context, dt domain.DocumentType, lang domain.Language) ([]domain.LocalizedDocument, error) {
	if _, err := domain.ParseDocumentType(string(dt)); err != nil {
		return nil, err
	}
	docs, err := s.repo.ListPublishedByType(ctx, dt)
	if err != nil {
		return nil, err
	}
	return localizeAll(docs, lang), nil
}

func localizeAll(docs []domain.DocumentWithCategory, lang domain.Language) []domain.LocalizedDocument {
	out := make([]domain.LocalizedDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Localize(d, lang))
	}
	return out
}

func validatePatch(patch domain.DocumentPatch) error {
	required := map[string]domain.Optional[string]{
		"title_id":   patch.TitleID,
		"title_en":   patch.TitleEN,
		"content_id": patch.ContentID,
		"content_en": patch.ContentEN,
	}
	for name, f := range required {
		if f.Set && (f.Value == nil || strings.TrimSpace(*f.Value) == "") {
			return domain.Validationf("%s cannot be empty", name)
		}
	}
	if patch.DocumentType.Set {
		if patch.DocumentType.Value == nil {
			return domain.Validationf("document_type cannot be null")
		}
		if _, err := domain.ParseDocumentType(string(*patch.DocumentType.Value)); err != nil {
			return err
		}
	}
	return nil
}
