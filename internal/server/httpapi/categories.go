package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/server/services"
)

type categoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

func (s *Server) listCategories(c *gin.Context) {
	items, err := s.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	item, err := s.categories.Create(c.Request.Context(), services.CreateCategoryInput{
		Name:        deref(req.Name),
		Description: deref(req.Description),
		ImageURL:    deref(req.ImageURL),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) updateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	item, err := s.categories.Update(c.Request.Context(), c.Param("id"), services.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) deleteCategory(c *gin.Context) {
	if err := s.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
