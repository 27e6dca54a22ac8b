package httpserver

import (
	"context"

	"legal-catalog/internal/domain"
	categorysvc "legal-catalog/internal/service/category"
	documentsvc "legal-catalog/internal/service/document"
	searchsvc "legal-catalog/internal/service/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubCategoryRepo struct {
	created   *domain.Category
	createErr error
	list      []domain.Category
	getByID   *domain.Category
	getErr    error
	updated   *domain.Category
	updateErr error
	deleteErr error
}

func (s *stubCategoryRepo) Create(_ context.Context, _ domain.Category) (*domain.Category, error) {
	return s.created, s.createErr
}

func (s *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	return s.list, nil
}

func (s *stubCategoryRepo) GetByID(_ context.Context, _ int) (*domain.Category, error) {
	return s.getByID, s.getErr
}

func (s *stubCategoryRepo) Update(_ context.Context, _ int, _ domain.CategoryPatch) (*domain.Category, error) {
	return s.updated, s.updateErr
}

func (s *stubCategoryRepo) Delete(_ context.Context, _ int) error {
	return s.deleteErr
}

type stubDocumentRepo struct {
	created      *domain.LegalDocument
	createErr    error
	getByID      *domain.LegalDocument
	getErr       error
	withCategory *domain.DocumentWithCategory
	withCatErr   error
	updated      *domain.LegalDocument
	updateErr    error
	deleteResult bool
	deleteErr    error
	listed       []domain.DocumentWithCategory
	count        int
	total        int
}

func (s *stubDocumentRepo) Create(_ context.Context, _ domain.LegalDocument) (*domain.LegalDocument, error) {
	return s.created, s.createErr
}

func (s *stubDocumentRepo) GetByID(_ context.Context, _ int) (*domain.LegalDocument, error) {
	return s.getByID, s.getErr
}

func (s *stubDocumentRepo) GetWithCategory(_ context.Context, _ int) (*domain.DocumentWithCategory, error) {
	return s.withCategory, s.withCatErr
}

func (s *stubDocumentRepo) Update(_ context.Context, _ int, _ domain.DocumentPatch) (*domain.LegalDocument, error) {
	return s.updated, s.updateErr
}

func (s *stubDocumentRepo) Delete(_ context.Context, _ int) (bool, error) {
	return s.deleteResult, s.deleteErr
}

func (s *stubDocumentRepo) CountByCategory(_ context.Context, _ int) (int, error) {
	return s.count, nil
}

func (s *stubDocumentRepo) ListPublishedByCategory(_ context.Context, _ int) ([]domain.DocumentWithCategory, error) {
	return s.listed, nil
}

func (s *stubDocumentRepo) ListPublishedByType(_ context.Context, _ domain.DocumentType) ([]domain.DocumentWithCategory, error) {
	return s.listed, nil
}

func (s *stubDocumentRepo) Search(_ context.Context, _ domain.SearchFilter) ([]domain.DocumentWithCategory, error) {
	return s.listed, nil
}

func (s *stubDocumentRepo) CountSearch(_ context.Context, _ domain.SearchFilter) (int, error) {
	return s.total, nil
}

func testRouter(categories *stubCategoryRepo, documents *stubDocumentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	deps := Deps{
		CategorySvc: categorysvc.New(categories, documents),
		DocumentSvc: documentsvc.New(documents, categories),
		SearchSvc:   searchsvc.New(documents),
	}
	return buildRouter(zap.NewNop(), nil, deps)
}
