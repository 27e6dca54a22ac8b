package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"legal-catalog/internal/domain"
)

func TestSearch_Defaults(t *testing.T) {
	documents := &stubDocumentRepo{
		listed: []domain.DocumentWithCategory{*joinedDoc()},
		total:  1,
	}
	router := testRouter(&stubCategoryRepo{}, documents)

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res domain.SearchResults
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if res.TotalCount != 1 || res.HasMore {
		t.Fatalf("unexpected metadata %+v", res)
	}
	if len(res.Documents) != 1 || res.Documents[0].Title != "Judul" {
		t.Fatalf("expected Indonesian localization by default, got %+v", res.Documents)
	}
}

func TestSearch_HasMore(t *testing.T) {
	documents := &stubDocumentRepo{
		listed: []domain.DocumentWithCategory{*joinedDoc()},
		total:  42,
	}
	router := testRouter(&stubCategoryRepo{}, documents)

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"limit": 10, "offset": 10}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var res domain.SearchResults
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if res.TotalCount != 42 || !res.HasMore {
		t.Fatalf("unexpected metadata %+v", res)
	}
}

func TestSearch_RejectsBadDocumentType(t *testing.T) {
	router := testRouter(&stubCategoryRepo{}, &stubDocumentRepo{})

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"document_type": "regulation"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestSearch_RejectsNonPositiveLimit(t *testing.T) {
	router := testRouter(&stubCategoryRepo{}, &stubDocumentRepo{})

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"limit": 0}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
