package domain

import "time"

// Category is a bilingual grouping label documents are classified under.
type Category struct {
	ID            int       `json:"id"`
	NameID        string    `json:"name_id"`
	NameEN        string    `json:"name_en"`
	DescriptionID *string   `json:"description_id"`
	DescriptionEN *string   `json:"description_en"`
	CreatedAt     time.Time `json:"created_at"`
}

// CategoryPatch carries a partial category update. Fields left unset are not
// touched; fields set to an explicit null clear the stored value.
type CategoryPatch struct {
	NameID        Optional[string] `json:"name_id"`
	NameEN        Optional[string] `json:"name_en"`
	DescriptionID Optional[string] `json:"description_id"`
	DescriptionEN Optional[string] `json:"description_en"`
}

// IsEmpty reports whether the patch provides no fields at all.
func (p CategoryPatch) IsEmpty() bool {
	return !p.NameID.Set && !p.NameEN.Set && !p.DescriptionID.Set && !p.DescriptionEN.Set
}
