package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"legal-catalog/internal/domain"
)

type stubRepo struct {
	created    *domain.Category
	createErr  error
	createdArg *domain.Category
	list       []domain.Category
	getByID    *domain.Category
	getErr     error
	updated    *domain.Category
	updateErr  error
	updateArg  *domain.CategoryPatch
	deleteErr  error
	deleted    bool
}

func (s *stubRepo) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	s.createdArg = &c
	return s.created, s.createErr
}

func (s *stubRepo) List(_ context.Context) ([]domain.Category, error) {
	return s.list, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ int) (*domain.Category, error) {
	return s.getByID, s.getErr
}

func (s *stubRepo) Update(_ context.Context, _ int, patch domain.CategoryPatch) (*domain.Category, error) {
	s.updateArg = &patch
	return s.updated, s.updateErr
}

func (s *stubRepo) Delete(_ context.Context, _ int) error {
	s.deleted = true
	return s.deleteErr
}

type stubCounter struct {
	count int
	err   error
}

func (s *stubCounter) CountByCategory(_ context.Context, _ int) (int, error) {
	return s.count, s.err
}

func TestCreate_RequiresBothNames(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubCounter{})

	_, err := svc.Create(context.Background(), CreateInput{NameID: "", NameEN: "Criminal Law"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = svc.Create(context.Background(), CreateInput{NameID: "Hukum Pidana", NameEN: "   "})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.createdArg != nil {
		t.Fatalf("repo called despite validation failure")
	}
}

func TestCreate_HappyPath(t *testing.T) {
	expected := &domain.Category{ID: 1, NameID: "Hukum Pidana", NameEN: "Criminal Law"}
	repo := &stubRepo{created: expected}
	svc := New(repo, &stubCounter{})

	got, err := svc.Create(context.Background(), CreateInput{NameID: "Hukum Pidana", NameEN: "Criminal Law"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected category %+v", got)
	}
}

func TestUpdate_EmptyPatchReturnsCurrentRecord(t *testing.T) {
	current := &domain.Category{ID: 5, NameID: "Hukum Perdata", NameEN: "Civil Law"}
	repo := &stubRepo{getByID: current}
	svc := New(repo, &stubCounter{})

	got, err := svc.Update(context.Background(), 5, domain.CategoryPatch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != current {
		t.Fatalf("expected current record, got %+v", got)
	}
	if repo.updateArg != nil {
		t.Fatalf("repo.Update called for an empty patch")
	}
}

func TestUpdate_PassesOnlyProvidedFields(t *testing.T) {
	repo := &stubRepo{updated: &domain.Category{ID: 5, NameEN: "New Name"}}
	svc := New(repo, &stubCounter{})

	patch := domain.CategoryPatch{NameEN: domain.Some("New Name")}
	if _, err := svc.Update(context.Background(), 5, patch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.updateArg == nil || !repo.updateArg.NameEN.Set || repo.updateArg.NameID.Set {
		t.Fatalf("unexpected patch forwarded: %+v", repo.updateArg)
	}
}

func TestUpdate_RejectsEmptyOrNullName(t *testing.T) {
	svc := New(&stubRepo{}, &stubCounter{})

	_, err := svc.Update(context.Background(), 5, domain.CategoryPatch{NameID: domain.Some("")})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	_, err = svc.Update(context.Background(), 5, domain.CategoryPatch{NameEN: domain.Null[string]()})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for null name, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &stubRepo{updateErr: domain.ErrNotFound}
	svc := New(repo, &stubCounter{})

	_, err := svc.Update(context.Background(), 99, domain.CategoryPatch{NameEN: domain.Some("X")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo, &stubCounter{})

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.deleted {
		t.Fatalf("repo.Delete called for an unknown id")
	}
}

func TestDelete_ConflictReportsExactCount(t *testing.T) {
	repo := &stubRepo{getByID: &domain.Category{ID: 4}}
	svc := New(repo, &stubCounter{count: 3})

	err := svc.Delete(context.Background(), 4)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	var conflict *domain.ConflictError
	errors.As(err, &conflict)
	if conflict.DocumentCount != 3 {
		t.Fatalf("expected count 3, got %d", conflict.DocumentCount)
	}
	if !strings.Contains(err.Error(), "3") {
		t.Fatalf("message does not embed the count: %q", err.Error())
	}
	if repo.deleted {
		t.Fatalf("repo.Delete called despite references")
	}
}

func TestDelete_SucceedsAtZeroReferences(t *testing.T) {
	repo := &stubRepo{getByID: &domain.Category{ID: 4}}
	svc := New(repo, &stubCounter{count: 0})

	if err := svc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.deleted {
		t.Fatalf("repo.Delete not called")
	}
}
