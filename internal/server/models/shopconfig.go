package models

import "time"

// ShopConfig is the singleton appearance/branding record for the shop.
type ShopConfig struct {
	ID                 string    `json:"id"`
	ShopName           string    `json:"shop_name"`
	BackgroundColor    string    `json:"background_color"`
	BackgroundImageURL string    `json:"background_image_url,omitempty"`
	LogoURL            string    `json:"logo_url,omitempty"`
	DarkMode           bool      `json:"dark_mode"`
	FooterText         string    `json:"footer_text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
