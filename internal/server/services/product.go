package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/dbx"
	"github.com/avigneron/boutique/internal/server/demo"
	"github.com/avigneron/boutique/internal/server/models"
	"github.com/avigneron/boutique/internal/slugx"
)

// ProductService is the facade over the product catalogue.
type ProductService struct {
	deps Deps
}

func NewProductService(deps Deps) *ProductService {
	return &ProductService{deps: deps}
}

// CreateProductInput carries the fields accepted on product creation.
// Slug is optional and derived from Name when absent.
type CreateProductInput struct {
	Name         string
	Slug         string
	Description  string
	Price        float64
	VideoURL     string
	ThumbnailURL string
	OrderLink    string
	CategoryID   string
}

// UpdateProductInput carries a partial update; nil fields stay unchanged.
type UpdateProductInput struct {
	Name         *string
	Slug         *string
	Description  *string
	Price        *float64
	VideoURL     *string
	ThumbnailURL *string
	OrderLink    *string
	CategoryID   *string
	IsActive     *bool
}

func (in CreateProductInput) validate() error {
	if in.Name == "" || in.Description == "" || in.VideoURL == "" ||
		in.ThumbnailURL == "" || in.OrderLink == "" {
		return fmt.Errorf("%w: all product fields are required", common.ErrorValidation)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", common.ErrorValidation)
	}
	return nil
}

// seed returns the fallback dataset, preferring the file documents when a
// data directory is configured.
func (s *ProductService) seed(ctx context.Context) []*models.Product {
	if s.deps.Files != nil {
		items, err := s.deps.Files.LoadProducts()
		if err != nil {
			s.deps.Logger.Error(ctx, "products document read failed", "error", err)
		} else if items != nil {
			return items
		}
	}
	return demo.Products()
}

func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	if s.deps.Fallback {
		return s.seed(ctx), nil
	}

	items, err := s.deps.Repos.Products(s.deps.readHandle()).List(ctx)
	if err != nil {
		s.deps.Logger.Error(ctx, "product list query failed, serving demo data", "error", err)
		return demo.Products(), nil
	}
	return items, nil
}

func (s *ProductService) ListByCategory(ctx context.Context, slug string) ([]*models.Product, error) {
	if s.deps.Fallback {
		return seedByCategory(s.seed(ctx), slug), nil
	}

	items, err := s.deps.Repos.Products(s.deps.readHandle()).ListByCategorySlug(ctx, slug)
	if err != nil {
		s.deps.Logger.Error(ctx, "product category query failed, serving demo data", "slug", slug, "error", err)
		return seedByCategory(demo.Products(), slug), nil
	}
	return items, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	if s.deps.Fallback {
		return findProduct(s.seed(ctx), id)
	}

	p, err := s.deps.Repos.Products(s.deps.readHandle()).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "product get query failed, serving demo data", "id", id, "error", err)
		return findProduct(demo.Products(), id)
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &models.Product{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Slug:         in.Slug,
		Description:  in.Description,
		Price:        in.Price,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		OrderLink:    in.OrderLink,
		CategoryID:   in.CategoryID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if product.Slug == "" {
		product.Slug = slugx.Derive(product.Name)
	}

	if s.deps.Fallback {
		if s.deps.Files != nil {
			if err := s.deps.Files.SaveProducts(append(s.seed(ctx), product)); err != nil {
				s.deps.Logger.Error(ctx, "products document write failed", "error", err)
				return nil, common.ErrorBackend
			}
		}
		return product, nil
	}

	if err := s.deps.Repos.Products(s.deps.DB).Create(ctx, product); err != nil {
		s.deps.Logger.Error(ctx, "product insert failed", "error", err)
		return nil, common.ErrorBackend
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in UpdateProductInput) (*models.Product, error) {
	if s.deps.Fallback {
		existing, err := findProduct(s.seed(ctx), id)
		if err != nil {
			return nil, err
		}
		applyProductPatch(existing, in)
		if s.deps.Files != nil {
			if err := s.saveFilePatch(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	var updated *models.Product
	err := dbx.WithTx(ctx, s.deps.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.deps.Repos.Products(tx)
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		applyProductPatch(existing, in)
		if err := repo.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "product update failed", "id", id, "error", err)
		return nil, common.ErrorBackend
	}
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if s.deps.Fallback {
		items := s.seed(ctx)
		if _, err := findProduct(items, id); err != nil {
			return err
		}
		if s.deps.Files != nil {
			kept := make([]*models.Product, 0, len(items))
			for _, p := range items {
				if p.ID != id {
					kept = append(kept, p)
				}
			}
			if err := s.deps.Files.SaveProducts(kept); err != nil {
				s.deps.Logger.Error(ctx, "products document write failed", "error", err)
				return common.ErrorBackend
			}
		}
		return nil
	}

	if err := s.deps.Repos.Products(s.deps.DB).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "product delete failed", "id", id, "error", err)
		return common.ErrorBackend
	}
	return nil
}

func (s *ProductService) saveFilePatch(ctx context.Context, updated *models.Product) error {
	items := s.seed(ctx)
	for i, p := range items {
		if p.ID == updated.ID {
			items[i] = updated
		}
	}
	if err := s.deps.Files.SaveProducts(items); err != nil {
		s.deps.Logger.Error(ctx, "products document write failed", "error", err)
		return common.ErrorBackend
	}
	return nil
}

func applyProductPatch(p *models.Product, in UpdateProductInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.VideoURL != nil {
		p.VideoURL = *in.VideoURL
	}
	if in.ThumbnailURL != nil {
		p.ThumbnailURL = *in.ThumbnailURL
	}
	if in.OrderLink != nil {
		p.OrderLink = *in.OrderLink
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now()
}

func findProduct(items []*models.Product, id string) (*models.Product, error) {
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func seedByCategory(items []*models.Product, slug string) []*models.Product {
	var categoryID string
	for _, c := range demo.Categories() {
		if c.Slug == slug {
			categoryID = c.ID
			break
		}
	}

	var result []*models.Product
	for _, p := range items {
		if p.CategoryID == categoryID && categoryID != "" {
			result = append(result, p)
		}
	}
	return result
}
