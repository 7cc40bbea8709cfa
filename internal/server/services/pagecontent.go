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

// PageContentService is the facade over keyed editable site content.
type PageContentService struct {
	deps Deps
}

func NewPageContentService(deps Deps) *PageContentService {
	return &PageContentService{deps: deps}
}

type CreatePageContentInput struct {
	PageKey string
	Content models.PageBody
}

type UpdatePageContentInput struct {
	Content *models.PageBody
}

func (in CreatePageContentInput) validate() error {
	if in.PageKey == "" || in.Content.Title == "" {
		return fmt.Errorf("%w: page_key and content title are required", common.ErrorValidation)
	}
	return nil
}

func (s *PageContentService) List(ctx context.Context) ([]*models.PageContent, error) {
	if s.deps.Fallback {
		return demo.Pages(), nil
	}

	items, err := s.deps.Repos.PageContent(s.deps.readHandle()).List(ctx)
	if err != nil {
		s.deps.Logger.Error(ctx, "page content list query failed, serving demo data", "error", err)
		return demo.Pages(), nil
	}
	return items, nil
}

func (s *PageContentService) Get(ctx context.Context, id string) (*models.PageContent, error) {
	if s.deps.Fallback {
		return findPage(demo.Pages(), id)
	}

	p, err := s.deps.Repos.PageContent(s.deps.readHandle()).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "page content get query failed, serving demo data", "id", id, "error", err)
		return findPage(demo.Pages(), id)
	}
	return p, nil
}

// GetByKey resolves a page by its stable key ("about", "contact", ...).
func (s *PageContentService) GetByKey(ctx context.Context, pageKey string) (*models.PageContent, error) {
	if s.deps.Fallback {
		return findPageByKey(demo.Pages(), pageKey)
	}

	p, err := s.deps.Repos.PageContent(s.deps.readHandle()).GetByKey(ctx, pageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "page content key query failed, serving demo data", "page_key", pageKey, "error", err)
		return findPageByKey(demo.Pages(), pageKey)
	}
	return p, nil
}

func (s *PageContentService) Create(ctx context.Context, in CreatePageContentInput) (*models.PageContent, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	page := &models.PageContent{
		ID:        uuid.NewString(),
		PageKey:   in.PageKey,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if page.Content.Slug == "" {
		page.Content.Slug = slugx.Derive(page.Content.Title)
	}

	if s.deps.Fallback {
		return page, nil
	}

	if err := s.deps.Repos.PageContent(s.deps.DB).Create(ctx, page); err != nil {
		s.deps.Logger.Error(ctx, "page content insert failed", "page_key", in.PageKey, "error", err)
		return nil, common.ErrorBackend
	}
	return page, nil
}

func (s *PageContentService) Update(ctx context.Context, id string, in UpdatePageContentInput) (*models.PageContent, error) {
	if s.deps.Fallback {
		existing, err := findPage(demo.Pages(), id)
		if err != nil {
			return nil, err
		}
		applyPagePatch(existing, in)
		return existing, nil
	}

	var updated *models.PageContent
	err := dbx.WithTx(ctx, s.deps.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.deps.Repos.PageContent(tx)
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		applyPagePatch(existing, in)
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
		s.deps.Logger.Error(ctx, "page content update failed", "id", id, "error", err)
		return nil, common.ErrorBackend
	}
	return updated, nil
}

func (s *PageContentService) Delete(ctx context.Context, id string) error {
	if s.deps.Fallback {
		if _, err := findPage(demo.Pages(), id); err != nil {
			return err
		}
		return nil
	}

	if err := s.deps.Repos.PageContent(s.deps.DB).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "page content delete failed", "id", id, "error", err)
		return common.ErrorBackend
	}
	return nil
}

func applyPagePatch(p *models.PageContent, in UpdatePageContentInput) {
	if in.Content != nil {
		p.Content = *in.Content
	}
	p.UpdatedAt = time.Now()
}

func findPage(items []*models.PageContent, id string) (*models.PageContent, error) {
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func findPageByKey(items []*models.PageContent, pageKey string) (*models.PageContent, error) {
	for _, p := range items {
		if p.PageKey == pageKey {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}
