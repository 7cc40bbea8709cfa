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

// CategoryService is the facade over product categories.
type CategoryService struct {
	deps Deps
}

func NewCategoryService(deps Deps) *CategoryService {
	return &CategoryService{deps: deps}
}

type CreateCategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	ImageURL    *string
	IsActive    *bool
}

func (in CreateCategoryInput) validate() error {
	if in.Name == "" || in.Description == "" {
		return fmt.Errorf("%w: name and description are required", common.ErrorValidation)
	}
	return nil
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	if s.deps.Fallback {
		return demo.Categories(), nil
	}

	items, err := s.deps.Repos.Categories(s.deps.readHandle()).List(ctx)
	if err != nil {
		s.deps.Logger.Error(ctx, "category list query failed, serving demo data", "error", err)
		return demo.Categories(), nil
	}
	return items, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	if s.deps.Fallback {
		return findCategory(demo.Categories(), id)
	}

	c, err := s.deps.Repos.Categories(s.deps.readHandle()).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "category get query failed, serving demo data", "id", id, "error", err)
		return findCategory(demo.Categories(), id)
	}
	return c, nil
}

func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &models.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        slugx.Derive(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if s.deps.Fallback {
		return category, nil
	}

	if err := s.deps.Repos.Categories(s.deps.DB).Create(ctx, category); err != nil {
		s.deps.Logger.Error(ctx, "category insert failed", "error", err)
		return nil, common.ErrorBackend
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, in UpdateCategoryInput) (*models.Category, error) {
	if s.deps.Fallback {
		existing, err := findCategory(demo.Categories(), id)
		if err != nil {
			return nil, err
		}
		applyCategoryPatch(existing, in)
		return existing, nil
	}

	var updated *models.Category
	err := dbx.WithTx(ctx, s.deps.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.deps.Repos.Categories(tx)
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		applyCategoryPatch(existing, in)
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
		s.deps.Logger.Error(ctx, "category update failed", "id", id, "error", err)
		return nil, common.ErrorBackend
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if s.deps.Fallback {
		if _, err := findCategory(demo.Categories(), id); err != nil {
			return err
		}
		return nil
	}

	if err := s.deps.Repos.Categories(s.deps.DB).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "category delete failed", "id", id, "error", err)
		return common.ErrorBackend
	}
	return nil
}

func applyCategoryPatch(c *models.Category, in UpdateCategoryInput) {
	if in.Name != nil {
		c.Name = *in.Name
		c.Slug = slugx.Derive(c.Name)
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.ImageURL != nil {
		c.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.UpdatedAt = time.Now()
}

func findCategory(items []*models.Category, id string) (*models.Category, error) {
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}
