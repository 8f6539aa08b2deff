package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmcquade/lifedesk-backend/internal/apierr"
	"github.com/bmcquade/lifedesk-backend/internal/logger"
)

// StatusConfig holds the wire-status decisions that are deployment choices
// rather than contract: legacy clients expect 400 where newer ones expect 404.
type StatusConfig struct {
	NotFound int
}

func DefaultStatusConfig() StatusConfig {
	return StatusConfig{NotFound: http.StatusNotFound}
}

func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// respondText keeps the legacy response shape for update/delete confirmations:
// a bare JSON-encoded string, not an object.
func respondText(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, msg)
}

func respondError(c *gin.Context, cfg StatusConfig, log *logger.Logger, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if apiErr.Code == apierr.CodeNotFound {
			status = cfg.NotFound
		}
		if status == 0 {
			status = http.StatusInternalServerError
		}
		respondMessage(c, status, apiErr.Error())
		return
	}
	if log != nil {
		log.Error("request failed", "error", err, "path", c.FullPath())
	}
	respondMessage(c, http.StatusInternalServerError, "Internal Server Error")
}
