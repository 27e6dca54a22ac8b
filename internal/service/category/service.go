package category

import (
	"context"
	"strings"

	"legal-catalog/internal/domain"
	categoryrepo "legal-catalog/internal/repository/category"
)

// DocumentCounter is the slice of the document repository the category
// service needs to enforce the no-delete-while-referenced rule.
type DocumentCounter interface {
	CountByCategory(ctx context.Context, categoryID int) (int, error)
}

type Service struct {
	repo      categoryrepo.Repository
	documents DocumentCounter
}

func New(repo categoryrepo.Repository, documents DocumentCounter) *Service {
	return &Service{repo: repo, documents: documents}
}

type CreateInput struct {
	NameID        string
	NameEN        string
	DescriptionID *string
	DescriptionEN *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	if strings.TrimSpace(in.NameID) == "" {
		return nil, domain.Validationf("name_id is required")
	}
	if strings.TrimSpace(in.NameEN) == "" {
		return nil, domain.Validationf("name_en is required")
	}
	return s.repo.Create(ctx, domain.Category{
		NameID:        in.NameID,
		NameEN:        in.NameEN,
		DescriptionID: in.DescriptionID,
		DescriptionEN: in.DescriptionEN,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update. An empty patch returns the current record
// unchanged; provided names must stay non-empty since both are required.
func (s *Service) Update(ctx context.Context, id int, patch domain.CategoryPatch) (*domain.Category, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a category only when no documents reference it.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.documents.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ConflictError{CategoryID: id, DocumentCount: count}
	}
	return s.repo.Delete(ctx, id)
}

func validatePatch(patch domain.CategoryPatch) error {
	if patch.NameID.Set && (patch.NameID.Value == nil || strings.TrimSpace(*patch.NameID.Value) == "") {
		return domain.Validationf("name_id cannot be empty")
	}
	if patch.NameEN.Set && (patch.NameEN.Value == nil || strings.TrimSpace(*patch.NameEN.Value) == "") {
		return domain.Validationf("name_en cannot be empty")
	}
	return nil
}
