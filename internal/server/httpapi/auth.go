package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/common"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}

// login verifies the admin password and mints a bearer token.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	if req.Password == "" {
		respondError(c, fmt.Errorf("%w: password is required", common.ErrorValidation))
		return
	}

	if !s.gate.VerifyPassword(req.Password) {
		respondError(c, common.ErrorUnauthorized)
		return
	}

	token, err := s.gate.IssueToken()
	if err != nil {
		respondError(c, common.ErrorInternal)
		return
	}

	session := s.gate.CreateSession()
	respondOK(c, loginResponse{Token: token, Expires: session.Expires})
}

// checkToken confirms the caller's token; the middleware has already
// validated it, so reaching here means the session holds.
func (s *Server) checkToken(c *gin.Context) {
	respondOK(c, s.gate.CreateSession())
}
