package document

import (
	"context"

	"legal-catalog/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, d domain.LegalDocument) (*domain.LegalDocument, error)
	GetByID(ctx context.Context, id int) (*domain.LegalDocument, error)
	GetWithCategory(ctx context.Context, id int) (*domain.DocumentWithCategory, error)
	Update(ctx context.Context, id int, patch domain.DocumentPatch) (*domain.LegalDocument, error)
	Delete(ctx context.Context, id int) (bool, error)
	CountByCategory(ctx context.Context, categoryID int) (int, error)
	ListPublishedByCategory(ctx context.Context, categoryID int) ([]domain.DocumentWithCategory, error)
	ListPublishedByType(ctx context.Context, dt domain.DocumentType) ([]domain.DocumentWithCategory, error)
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.DocumentWithCategory, error)
	CountSearch(ctx context.Context, f domain.SearchFilter) (int, error)
}
