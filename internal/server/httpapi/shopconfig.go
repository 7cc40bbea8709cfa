package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/server/services"
)

type shopConfigRequest struct {
	ShopName           string `json:"shop_name"`
	BackgroundColor    string `json:"background_color"`
	BackgroundImageURL string `json:"background_image_url"`
	LogoURL            string `json:"logo_url"`
	DarkMode           bool   `json:"dark_mode"`
	FooterText         string `json:"footer_text"`
}

func (s *Server) getShopConfig(c *gin.Context) {
	cfg, err := s.shopConfig.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, cfg)
}

func (s *Server) saveShopConfig(c *gin.Context) {
	var req shopConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	cfg, err := s.shopConfig.Save(c.Request.Context(), services.SaveShopConfigInput{
		ShopName:           req.ShopName,
		BackgroundColor:    req.BackgroundColor,
		BackgroundImageURL: req.BackgroundImageURL,
		LogoURL:            req.LogoURL,
		DarkMode:           req.DarkMode,
		FooterText:         req.FooterText,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, cfg)
}
