package domain

// Language selects which side of a bilingual record is presented.
type Language string

const (
	LanguageIndonesian Language = "id"
	LanguageEnglish    Language = "en"
)

// ParseLanguage validates a language tag. An empty tag falls back to
// Indonesian, the catalog default.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case "":
		return LanguageIndonesian, nil
	case LanguageIndonesian, LanguageEnglish:
		return Language(s), nil
	default:
		return "", Validationf("unknown language %q (expected id or en)", s)
	}
}

// DocumentType is the closed set of legal-document kinds.
type DocumentType string

const (
	TypeArticle  DocumentType = "article"
	TypeLaw      DocumentType = "law"
	TypeDecision DocumentType = "decision"
)

// ParseDocumentType validates a document type tag.
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case TypeArticle, TypeLaw, TypeDecision:
		return DocumentType(s), nil
	default:
		return "", Validationf("unknown document type %q (expected article, law or decision)", s)
	}
}
