package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	internalErrorCode     = "internal_error"
	genericFailureMessage = "An error occurred during prediction"
)

// HTTPRecovery turns a panic into the standard failure envelope. The panic
// value is only sent to the client when exposeErrorDetails is set.
func HTTPRecovery(exposeErrorDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Str(RequestIDKey, c.GetString(RequestIDKey)).
					Msgf("Panic occurred: %v\n%s", err, debug.Stack())
				if !exposeErrorDetails {
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"success":    false,
						"error":      internalErrorCode,
						"error_code": internalErrorCode,
						"message":    genericFailureMessage,
					})
					return
				}
				errorMsg := fmt.Sprintf("%v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   errorMsg,
					"message": genericFailureMessage + ": " + errorMsg,
				})
			}
		}()
		c.Next()
	}
}
