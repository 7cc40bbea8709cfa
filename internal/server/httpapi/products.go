package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/server/services"
)

type productRequest struct {
	Name         *string  `json:"name"`
	Slug         *string  `json:"slug"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	VideoURL     *string  `json:"video_url"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	OrderLink    *string  `json:"order_link"`
	CategoryID   *string  `json:"category_id"`
	IsActive     *bool    `json:"is_active"`
}

func (s *Server) listProducts(c *gin.Context) {
	items, err := s.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (s *Server) listProductsByCategory(c *gin.Context) {
	items, err := s.products.ListByCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (s *Server) getProduct(c *gin.Context) {
	item, err := s.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	in := services.CreateProductInput{
		Name:         deref(req.Name),
		Slug:         deref(req.Slug),
		Description:  deref(req.Description),
		VideoURL:     deref(req.VideoURL),
		ThumbnailURL: deref(req.ThumbnailURL),
		OrderLink:    deref(req.OrderLink),
		CategoryID:   deref(req.CategoryID),
	}
	if req.Price != nil {
		in.Price = *req.Price
	}

	item, err := s.products.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) updateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	item, err := s.products.Update(c.Request.Context(), c.Param("id"), services.UpdateProductInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		OrderLink:    req.OrderLink,
		CategoryID:   req.CategoryID,
		IsActive:     req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
