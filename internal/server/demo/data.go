// Package demo holds the fixed dataset served when no live store is
// configured. Each accessor returns fresh values with current timestamps so
// callers cannot distinguish demo records from live rows by shape.
//
// Writes against this dataset are non-durable by contract: services
// synthesize plausible result records without mutating the seed.
package demo

import (
	"time"

	"github.com/avigneron/boutique/internal/server/models"
)

// Products returns the seeded catalogue.
func Products() []*models.Product {
	now := time.Now()
	return []*models.Product{
		{
			ID:           "1",
			Name:         "Huile CBD 10%",
			Slug:         "huile-cbd-10",
			Description:  "Huile CBD naturelle et bio, 10ml",
			Price:        29.99,
			VideoURL:     "https://res.cloudinary.com/demo/video/upload/sample.mp4",
			ThumbnailURL: "https://res.cloudinary.com/demo/image/upload/sample.jpg",
			OrderLink:    "https://example.com/commande",
			CategoryID:   "1",
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "2",
			Name:         "Gélules CBD 500mg",
			Slug:         "gelules-cbd-500mg",
			Description:  "Gélules CBD pour un sommeil réparateur",
			Price:        39.99,
			VideoURL:     "https://res.cloudinary.com/demo/video/upload/sample2.mp4",
			ThumbnailURL: "https://res.cloudinary.com/demo/image/upload/sample2.jpg",
			OrderLink:    "https://example.com/commande2",
			CategoryID:   "2",
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// Categories returns the seeded category list.
func Categories() []*models.Category {
	now := time.Now()
	return []*models.Category{
		{
			ID:          "1",
			Name:        "Huiles CBD",
			Slug:        "huiles-cbd",
			Description: "Huiles CBD de différentes concentrations",
			ImageURL:    "/uploads/categories/huiles-cbd.jpg",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Gélules CBD",
			Slug:        "gelules-cbd",
			Description: "Gélules CBD pour une prise facile",
			ImageURL:    "/uploads/categories/gelules-cbd.jpg",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Cosmétiques CBD",
			Slug:        "cosmetiques-cbd",
			Description: "Produits cosmétiques enrichis au CBD",
			ImageURL:    "/uploads/categories/cosmetiques-cbd.jpg",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// SocialMedia returns the seeded social links.
func SocialMedia() []*models.SocialMedia {
	now := time.Now()
	return []*models.SocialMedia{
		{
			ID:        "1",
			Platform:  "Instagram",
			URL:       "https://instagram.com/maboutiquecbd",
			Icon:      "instagram",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "2",
			Platform:  "Facebook",
			URL:       "https://facebook.com/maboutiquecbd",
			Icon:      "facebook",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// Pages returns the seeded editable content pages.
func Pages() []*models.PageContent {
	now := time.Now()
	return []*models.PageContent{
		{
			ID:      "1",
			PageKey: "about",
			Content: models.PageBody{
				Title:     "À propos de nous",
				Content:   "Nous sommes spécialisés dans la vente de produits CBD de qualité...",
				Slug:      "a-propos",
				Published: true,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:      "2",
			PageKey: "contact",
			Content: models.PageBody{
				Title:     "Contact",
				Content:   "Pour nous contacter :\nEmail: contact@maboutiquecbd.fr\nTéléphone: 01 23 45 67 89",
				Slug:      "contact",
				Published: true,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// ShopConfig returns the seeded shop appearance record.
func ShopConfig() *models.ShopConfig {
	now := time.Now()
	return &models.ShopConfig{
		ID:              "1",
		ShopName:        "Ma Boutique CBD",
		BackgroundColor: "#ffffff",
		DarkMode:        false,
		FooterText:      "© 2024 Ma Boutique CBD. Tous droits réservés.",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
