package router

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shubhamkumar755/AutismS/internal/screening/controller"
	"github.com/shubhamkumar755/AutismS/pkg/httpframework"
)

var (
	initScreeningRouterOnce sync.Once
)

// Init expects http framework to be initialized before calling this function
func Init(ctrl *controller.ScreeningController) {
	initScreeningRouterOnce.Do(func() {
		Register(httpframework.Instance(), ctrl)
	})
}

// Register mounts the screening routes on router.
func Register(router gin.IRouter, ctrl *controller.ScreeningController) {
	router.GET("/", ctrl.Home)
	router.POST("/test", ctrl.Test)
	router.POST("/predict", ctrl.Predict)

	api := router.Group("/api")
	{
		api.GET("/health", ctrl.Health)
		api.GET("/model/info", ctrl.ModelInfo)
	}
}
