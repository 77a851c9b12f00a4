package handlers

import (
	"planmystay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request-scoped logger when middleware has attached
// one, falling back to the process-wide logger.
func getLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
