package models

import "time"

// PageBody is the editable payload of a content page, stored as a JSON
// document in the live store.
type PageBody struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Slug      string `json:"slug"`
	Published bool   `json:"published"`
}

// PageContent is a keyed block of editable site text (about, contact, ...).
type PageContent struct {
	ID        string    `json:"id"`
	PageKey   string    `json:"page_key"`
	Content   PageBody  `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
