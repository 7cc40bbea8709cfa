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
)

// SocialMediaService is the facade over social profile links.
type SocialMediaService struct {
	deps Deps
}

func NewSocialMediaService(deps Deps) *SocialMediaService {
	return &SocialMediaService{deps: deps}
}

type CreateSocialMediaInput struct {
	Platform string
	URL      string
	Icon     string
}

type UpdateSocialMediaInput struct {
	Platform *string
	URL      *string
	Icon     *string
}

func (in CreateSocialMediaInput) validate() error {
	if in.Platform == "" || in.URL == "" || in.Icon == "" {
		return fmt.Errorf("%w: platform, url and icon are required", common.ErrorValidation)
	}
	return nil
}

func (s *SocialMediaService) List(ctx context.Context) ([]*models.SocialMedia, error) {
	if s.deps.Fallback {
		return demo.SocialMedia(), nil
	}

	items, err := s.deps.Repos.SocialMedia(s.deps.readHandle()).List(ctx)
	if err != nil {
		s.deps.Logger.Error(ctx, "social media list query failed, serving demo data", "error", err)
		return demo.SocialMedia(), nil
	}
	return items, nil
}

func (s *SocialMediaService) Get(ctx context.Context, id string) (*models.SocialMedia, error) {
	if s.deps.Fallback {
		return findSocialMedia(demo.SocialMedia(), id)
	}

	item, err := s.deps.Repos.SocialMedia(s.deps.readHandle()).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "social media get query failed, serving demo data", "id", id, "error", err)
		return findSocialMedia(demo.SocialMedia(), id)
	}
	return item, nil
}

func (s *SocialMediaService) Create(ctx context.Context, in CreateSocialMediaInput) (*models.SocialMedia, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	link := &models.SocialMedia{
		ID:        uuid.NewString(),
		Platform:  in.Platform,
		URL:       in.URL,
		Icon:      in.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if s.deps.Fallback {
		return link, nil
	}

	if err := s.deps.Repos.SocialMedia(s.deps.DB).Create(ctx, link); err != nil {
		s.deps.Logger.Error(ctx, "social media insert failed", "error", err)
		return nil, common.ErrorBackend
	}
	return link, nil
}

func (s *SocialMediaService) Update(ctx context.Context, id string, in UpdateSocialMediaInput) (*models.SocialMedia, error) {
	if s.deps.Fallback {
		existing, err := findSocialMedia(demo.SocialMedia(), id)
		if err != nil {
			return nil, err
		}
		applySocialMediaPatch(existing, in)
		return existing, nil
	}

	var updated *models.SocialMedia
	err := dbx.WithTx(ctx, s.deps.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.deps.Repos.SocialMedia(tx)
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		applySocialMediaPatch(existing, in)
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
		s.deps.Logger.Error(ctx, "social media update failed", "id", id, "error", err)
		return nil, common.ErrorBackend
	}
	return updated, nil
}

func (s *SocialMediaService) Delete(ctx context.Context, id string) error {
	if s.deps.Fallback {
		if _, err := findSocialMedia(demo.SocialMedia(), id); err != nil {
			return err
		}
		return nil
	}

	if err := s.deps.Repos.SocialMedia(s.deps.DB).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.deps.Logger.Error(ctx, "social media delete failed", "id", id, "error", err)
		return common.ErrorBackend
	}
	return nil
}

func applySocialMediaPatch(link *models.SocialMedia, in UpdateSocialMediaInput) {
	if in.Platform != nil {
		link.Platform = *in.Platform
	}
	if in.URL != nil {
		link.URL = *in.URL
	}
	if in.Icon != nil {
		link.Icon = *in.Icon
	}
	link.UpdatedAt = time.Now()
}

func findSocialMedia(items []*models.SocialMedia, id string) (*models.SocialMedia, error) {
	for _, link := range items {
		if link.ID == id {
			return link, nil
		}
	}
	return nil, common.ErrorNotFound
}
