package domain

import "time"

// LegalDocument is a bilingual record representing an article, law or
// decision. Both language variants are stored side by side; localization
// happens at presentation time.
type LegalDocument struct {
	ID              int          `json:"id"`
	TitleID         string       `json:"title_id"`
	TitleEN         string       `json:"title_en"`
	ContentID       string       `json:"content_id"`
	ContentEN       string       `json:"content_en"`
	SummaryID       *string      `json:"summary_id"`
	SummaryEN       *string      `json:"summary_en"`
	DocumentType    DocumentType `json:"document_type"`
	CategoryID      int          `json:"category_id"`
	DocumentNumber  *string      `json:"document_number"`
	PublicationDate *time.Time   `json:"publication_date"`
	EffectiveDate   *time.Time   `json:"effective_date"`
	Tags            []string     `json:"tags"`
	FileURL         *string      `json:"file_url"`
	IsPublished     bool         `json:"is_published"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// DocumentWithCategory is a document joined with its owning category's
// bilingual name, as read back from the store.
type DocumentWithCategory struct {
	LegalDocument
	CategoryNameID string
	CategoryNameEN string
}

// LocalizedDocument is a single-language projection of a bilingual document.
type LocalizedDocument struct {
	ID              int          `json:"id"`
	Title           string       `json:"title"`
	Content         string       `json:"content"`
	Summary         *string      `json:"summary"`
	DocumentType    DocumentType `json:"document_type"`
	CategoryID      int          `json:"category_id"`
	CategoryName    string       `json:"category_name"`
	DocumentNumber  *string      `json:"document_number"`
	PublicationDate *time.Time   `json:"publication_date"`
	EffectiveDate   *time.Time   `json:"effective_date"`
	Tags            []string     `json:"tags"`
	FileURL         *string      `json:"file_url"`
	IsPublished     bool         `json:"is_published"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// DocumentPatch carries a partial document update. Fields left unset are not
// touched; nullable fields set to an explicit null clear the stored value.
type DocumentPatch struct {
	TitleID         Optional[string]       `json:"title_id"`
	TitleEN         Optional[string]       `json:"title_en"`
	ContentID       Optional[string]       `json:"content_id"`
	ContentEN       Optional[string]       `json:"content_en"`
	SummaryID       Optional[string]       `json:"summary_id"`
	SummaryEN       Optional[string]       `json:"summary_en"`
	DocumentType    Optional[DocumentType] `json:"document_type"`
	CategoryID      Optional[int]          `json:"category_id"`
	DocumentNumber  Optional[string]       `json:"document_number"`
	PublicationDate Optional[time.Time]    `json:"publication_date"`
	EffectiveDate   Optional[time.Time]    `json:"effective_date"`
	Tags            Optional[[]string]     `json:"tags"`
	FileURL         Optional[string]       `json:"file_url"`
	IsPublished     Optional[bool]         `json:"is_published"`
}

// SearchFilter is the set of predicates a search combines with logical AND.
// Zero values mean "no restriction" except PublishedOnly, Limit and Offset,
// whose defaults are applied at the input boundary.
type SearchFilter struct {
	Query         string
	DocumentType  *DocumentType
	CategoryID    *int
	Language      Language
	Tags          []string
	PublishedOnly bool
	Limit         int
	Offset        int
}

// SearchResults is a localized page of matches plus pagination metadata.
// TotalCount is the match count before Limit/Offset are applied.
type SearchResults struct {
	Documents  []LocalizedDocument `json:"documents"`
	TotalCount int                 `json:"total_count"`
	HasMore    bool                `json:"has_more"`
}
