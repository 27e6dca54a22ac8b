package category

import (
	"context"

	"legal-catalog/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	Update(ctx context.Context, id int, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}
