package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/server/models"
	"github.com/avigneron/boutique/internal/server/services"
)

type pageContentRequest struct {
	PageKey *string          `json:"page_key"`
	Content *models.PageBody `json:"content"`
}

func (s *Server) listPages(c *gin.Context) {
	items, err := s.pages.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (s *Server) getPageByKey(c *gin.Context) {
	item, err := s.pages.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) createPage(c *gin.Context) {
	var req pageContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	in := services.CreatePageContentInput{PageKey: deref(req.PageKey)}
	if req.Content != nil {
		in.Content = *req.Content
	}

	item, err := s.pages.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) updatePage(c *gin.Context) {
	var req pageContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	item, err := s.pages.Update(c.Request.Context(), c.Param("id"), services.UpdatePageContentInput{
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) deletePage(c *gin.Context) {
	if err := s.pages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
