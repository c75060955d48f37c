package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/alchemorsel-v2/price-estimator/internal/types"
)

// ErrorHandler recovers from panics and returns the standard JSON error body
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithFields(logrus.Fields{
					"request_id": c.GetString(RequestIDKey),
					"path":       c.Request.URL.Path,
				}).Errorf("Recovered from panic: %v", rec)

				c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
					Error:   types.MsgUnexpected,
					Details: fmt.Sprint(rec),
				})
			}
		}()

		c.Next()
	}
}
