package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/server/demo"
	"github.com/avigneron/boutique/internal/server/models"
)

// ShopConfigService is the facade over the singleton shop appearance record.
type ShopConfigService struct {
	deps Deps
}

func NewShopConfigService(deps Deps) *ShopConfigService {
	return &ShopConfigService{deps: deps}
}

// SaveShopConfigInput carries the full appearance record; saving is always a
// wholesale replace of the singleton.
type SaveShopConfigInput struct {
	ShopName           string
	BackgroundColor    string
	BackgroundImageURL string
	LogoURL            string
	DarkMode           bool
	FooterText         string
}

func (in SaveShopConfigInput) validate() error {
	if in.ShopName == "" || in.BackgroundColor == "" || in.FooterText == "" {
		return fmt.Errorf("%w: shop_name, background_color and footer_text are required", common.ErrorValidation)
	}
	return nil
}

// seed returns the fallback record, preferring the file document when a data
// directory is configured.
func (s *ShopConfigService) seed(ctx context.Context) *models.ShopConfig {
	if s.deps.Files != nil {
		cfg, err := s.deps.Files.LoadShopConfig()
		if err != nil {
			s.deps.Logger.Error(ctx, "config document read failed", "error", err)
		} else if cfg != nil {
			return cfg
		}
	}
	return demo.ShopConfig()
}

func (s *ShopConfigService) Get(ctx context.Context) (*models.ShopConfig, error) {
	if s.deps.Fallback {
		return s.seed(ctx), nil
	}

	cfg, err := s.deps.Repos.ShopConfig(s.deps.readHandle()).Get(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// no row yet: serve the seed so the storefront always renders
			return demo.ShopConfig(), nil
		}
		s.deps.Logger.Error(ctx, "shop config query failed, serving demo data", "error", err)
		return demo.ShopConfig(), nil
	}
	return cfg, nil
}

func (s *ShopConfigService) Save(ctx context.Context, in SaveShopConfigInput) (*models.ShopConfig, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	cfg := &models.ShopConfig{
		ID:                 uuid.NewString(),
		ShopName:           in.ShopName,
		BackgroundColor:    in.BackgroundColor,
		BackgroundImageURL: in.BackgroundImageURL,
		LogoURL:            in.LogoURL,
		DarkMode:           in.DarkMode,
		FooterText:         in.FooterText,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if s.deps.Fallback {
		if s.deps.Files != nil {
			if err := s.deps.Files.SaveShopConfig(cfg); err != nil {
				s.deps.Logger.Error(ctx, "config document write failed", "error", err)
				return nil, common.ErrorBackend
			}
		}
		return cfg, nil
	}

	if err := s.deps.Repos.ShopConfig(s.deps.DB).Save(ctx, cfg); err != nil {
		s.deps.Logger.Error(ctx, "shop config save failed", "error", err)
		return nil, common.ErrorBackend
	}
	return cfg, nil
}
