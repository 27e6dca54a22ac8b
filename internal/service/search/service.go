package search

import (
	"context"

	"legal-catalog/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Repository is the slice of the document repository the search engine runs
// on: one page query and one count query over the same filter.
type Repository interface {
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.DocumentWithCategory, error)
	CountSearch(ctx context.Context, f domain.SearchFilter) (int, error)
}

type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search executes the filter, localizes each match and computes pagination
// metadata. The page and count queries are independent reads over the same
// predicate and run concurrently. total_count is the match count before
// pagination; has_more is true iff offset+limit < total_count.
func (s *Service) Search(ctx context.Context, f domain.SearchFilter) (*domain.SearchResults, error) {
	if f.Limit <= 0 {
		return nil, domain.Validationf("limit must be positive")
	}
	if f.Offset < 0 {
		return nil, domain.Validationf("offset cannot be negative")
	}
	lang, err := domain.ParseLanguage(string(f.Language))
	if err != nil {
		return nil, err
	}
	f.Language = lang

	var (
		docs  []domain.DocumentWithCategory
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docs, err = s.repo.Search(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountSearch(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	localized := make([]domain.LocalizedDocument, 0, len(docs))
	for _, d := range docs {
		localized = append(localized, domain.Localize(d, f.Language))
	}
	return &domain.SearchResults{
		Documents:  localized,
		TotalCount: total,
		HasMore:    f.Offset+f.Limit < total,
	}, nil
}
