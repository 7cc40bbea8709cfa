package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/server/services"
)

type socialMediaRequest struct {
	Platform *string `json:"platform"`
	URL      *string `json:"url"`
	Icon     *string `json:"icon"`
}

func (s *Server) listSocialMedia(c *gin.Context) {
	items, err := s.socialMedia.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (s *Server) createSocialMedia(c *gin.Context) {
	var req socialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	item, err := s.socialMedia.Create(c.Request.Context(), services.CreateSocialMediaInput{
		Platform: deref(req.Platform),
		URL:      deref(req.URL),
		Icon:     deref(req.Icon),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) updateSocialMedia(c *gin.Context) {
	var req socialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	item, err := s.socialMedia.Update(c.Request.Context(), c.Param("id"), services.UpdateSocialMediaInput{
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

func (s *Server) deleteSocialMedia(c *gin.Context) {
	if err := s.socialMedia.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
