// Package models defines the entity records served by the storefront and
// admin APIs. The same shapes are returned regardless of which backing store
// produced them.
package models

import "time"

// Product is a single catalogue item.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	OrderLink    string    `json:"order_link"`
	CategoryID   string    `json:"category_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
