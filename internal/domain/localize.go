package domain

// Localize projects a joined document onto the requested language. Any tag
// other than English selects the Indonesian variant; unrecognized tags are
// rejected upstream by input validation.
func Localize(d DocumentWithCategory, lang Language) LocalizedDocument {
	en := lang == LanguageEnglish

	loc := LocalizedDocument{
		ID:              d.ID,
		Title:           d.TitleID,
		Content:         d.ContentID,
		Summary:         d.SummaryID,
		DocumentType:    d.DocumentType,
		CategoryID:      d.CategoryID,
		CategoryName:    d.CategoryNameID,
		DocumentNumber:  d.DocumentNumber,
		PublicationDate: d.PublicationDate,
		EffectiveDate:   d.EffectiveDate,
		Tags:            d.Tags,
		FileURL:         d.FileURL,
		IsPublished:     d.IsPublished,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if en {
		loc.Title = d.TitleEN
		loc.Content = d.ContentEN
		loc.Summary = d.SummaryEN
		loc.CategoryName = d.CategoryNameEN
	}
	if loc.Tags == nil {
		loc.Tags = []string{}
	}
	return loc
}
