package models

// SharedDocument is a published, addressable snapshot. The slug is unique
// across the registry; the edit code is generated once at creation and never
// changes; the view count only grows.
type SharedDocument struct {
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	EditCode  string `json:"edit_code"`
	ViewCount int    `json:"view_count"`
}
