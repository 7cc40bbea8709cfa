package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/common"
)

type presignResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

type downloadResponse struct {
	Key         string `json:"key"`
	DownloadURL string `json:"download_url"`
}

// presignUpload hands the admin client a short-lived URL to PUT a media
// file to; the storage key comes back so it can be stored on the entity.
func (s *Server) presignUpload(c *gin.Context) {
	key, url, err := s.uploads.GetPresignedPutURL(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, presignResponse{Key: key, UploadURL: url})
}

// presignDownload returns a short-lived download URL for the object behind
// the given storage key.
func (s *Server) presignDownload(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		respondError(c, fmt.Errorf("%w: key is required", common.ErrorValidation))
		return
	}

	url, err := s.uploads.GetPresignedGetURL(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, downloadResponse{Key: key, DownloadURL: url})
}
