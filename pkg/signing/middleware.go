package signing

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eros1981/fanbase-inside-out-top5/pkg/api/common"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
)

// Middleware verifies the X-Signature header on every request. The body is
// read in full and restored so downstream handlers can bind it.
func Middleware(secret string, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := c.GetHeader(Header)

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, common.ErrorResponse{Error: "Unable to read request body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		switch err := Verify(secret, body, signature); err {
		case nil:
			c.Next()
		case ErrNoSecret:
			logger.Error("Shared secret not configured; rejecting signed request")
			c.AbortWithStatusJSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Server configuration error"})
		case ErrMissingSignature:
			logger.WithField("client_ip", c.ClientIP()).Warn("Missing X-Signature header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.ErrorResponse{Error: "Missing signature"})
		default:
			logger.WithFields(logging.Fields{
				"provided":  Prefix(signature),
				"client_ip": c.ClientIP(),
			}).Warn("Invalid request signature")
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.ErrorResponse{Error: "Invalid signature"})
		}
	}
}
