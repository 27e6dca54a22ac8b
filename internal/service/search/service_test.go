package search

import (
	"context"
	"testing"

	"legal-catalog/internal/domain"
)

type stubRepo struct {
	docs       []domain.DocumentWithCategory
	total      int
	searchErr  error
	countErr   error
	lastFilter *domain.SearchFilter
}

func (s *stubRepo) Search(_ context.Context, f domain.SearchFilter) ([]domain.DocumentWithCategory, error) {
	s.lastFilter = &f
	return s.docs, s.searchErr
}

func (s *stubRepo) CountSearch(_ context.Context, _ domain.SearchFilter) (int, error) {
	return s.total, s.countErr
}

func joined(id int) domain.DocumentWithCategory {
	return domain.DocumentWithCategory{
		LegalDocument: domain.LegalDocument{
			ID:          id,
			TitleID:     "Judul",
			TitleEN:     "Title",
			ContentID:   "Isi",
			ContentEN:   "Body",
			IsPublished: true,
		},
		CategoryNameID: "Hukum Pidana",
		CategoryNameEN: "Criminal Law",
	}
}

func TestSearch_PaginationMetadata(t *testing.T) {
	repo := &stubRepo{docs: []domain.DocumentWithCategory{joined(1), joined(2)}, total: 5}
	svc := New(repo)

	res, err := svc.Search(context.Background(), domain.SearchFilter{Limit: 2, Offset: 0, PublishedOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalCount != 5 {
		t.Fatalf("expected total 5, got %d", res.TotalCount)
	}
	if !res.HasMore {
		t.Fatalf("expected has_more with offset 0, limit 2, total 5")
	}
}

func TestSearch_HasMoreBoundary(t *testing.T) {
	repo := &stubRepo{docs: []domain.DocumentWithCategory{joined(5)}, total: 5}
	svc := New(repo)

	// offset+limit == total means no further page.
	res, err := svc.Search(context.Background(), domain.SearchFilter{Limit: 2, Offset: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasMore {
		t.Fatalf("expected has_more false at boundary")
	}
}

func TestSearch_LocalizesResults(t *testing.T) {
	repo := &stubRepo{docs: []domain.DocumentWithCategory{joined(1)}, total: 1}
	svc := New(repo)

	res, err := svc.Search(context.Background(), domain.SearchFilter{Limit: 20, Language: domain.LanguageEnglish})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Documents) != 1 || res.Documents[0].Title != "Title" || res.Documents[0].CategoryName != "Criminal Law" {
		t.Fatalf("unexpected localization %+v", res.Documents)
	}
}

func TestSearch_EmptyLanguageDefaultsToIndonesian(t *testing.T) {
	repo := &stubRepo{docs: []domain.DocumentWithCategory{joined(1)}, total: 1}
	svc := New(repo)

	res, err := svc.Search(context.Background(), domain.SearchFilter{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Documents[0].Title != "Judul" {
		t.Fatalf("expected Indonesian title, got %q", res.Documents[0].Title)
	}
	if repo.lastFilter.Language != domain.LanguageIndonesian {
		t.Fatalf("filter language not defaulted: %q", repo.lastFilter.Language)
	}
}

func TestSearch_ValidatesPagination(t *testing.T) {
	svc := New(&stubRepo{})

	if _, err := svc.Search(context.Background(), domain.SearchFilter{Limit: 0}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for zero limit, got %v", err)
	}
	if _, err := svc.Search(context.Background(), domain.SearchFilter{Limit: 20, Offset: -1}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for negative offset, got %v", err)
	}
}

func TestSearch_RejectsUnknownLanguage(t *testing.T) {
	svc := New(&stubRepo{})

	_, err := svc.Search(context.Background(), domain.SearchFilter{Limit: 20, Language: "fr"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSearch_EmptyPage(t *testing.T) {
	repo := &stubRepo{docs: nil, total: 0}
	svc := New(repo)

	res, err := svc.Search(context.Background(), domain.SearchFilter{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Documents == nil || len(res.Documents) != 0 {
		t.Fatalf("expected empty document slice, got %v", res.Documents)
	}
	if res.HasMore {
		t.Fatalf("expected has_more false for empty result")
	}
}
