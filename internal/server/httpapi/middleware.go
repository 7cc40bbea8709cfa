package httpapi

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/common"
)

// requireAdmin rejects requests that do not carry a valid Bearer token
// issued by the credential gate.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondError(c, common.ErrorUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			respondError(c, common.ErrorUnauthorized)
			c.Abort()
			return
		}

		if !s.gate.ValidateToken(parts[1]) {
			respondError(c, common.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Next()
	}
}
