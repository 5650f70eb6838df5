package httpframework

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shubhamkumar755/AutismS/pkg/middleware"
)

var (
	router *gin.Engine
	once   sync.Once
)

// Init initializes gin engine with the given middlewares
// Release mode is used unless debug is requested outside production. The request id middleware
// always runs first; the access logger and recovery middlewares are always appended.
func Init(env string, debug, exposeErrorDetails bool, middlewares ...gin.HandlerFunc) {
	once.Do(func() {
		if !debug || env == "prod" || env == "production" {
			gin.SetMode(gin.ReleaseMode)
		}
		router = gin.New()
		handlers := append([]gin.HandlerFunc{middleware.RequestID()}, middlewares...)
		handlers = append(handlers, middleware.HTTPLogger(), middleware.HTTPRecovery(exposeErrorDetails))
		router.Use(handlers...)
	})
}

// Instance returns the httpframework instance
func Instance() *gin.Engine {
	if router == nil {
		log.Fatal().Msg("Router not initialized")
	}
	return router
}

// ResetForTesting resets the global state for testing purposes
func ResetForTesting() {
	router = nil
	once = sync.Once{}
}
