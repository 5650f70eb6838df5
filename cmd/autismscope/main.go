package main

import (
	"net"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	_ "go.uber.org/automaxprocs"

	"github.com/shubhamkumar755/AutismS/internal/configs"
	"github.com/shubhamkumar755/AutismS/internal/screening/artifact"
	"github.com/shubhamkumar755/AutismS/internal/screening/controller"
	"github.com/shubhamkumar755/AutismS/internal/screening/handler"
	"github.com/shubhamkumar755/AutismS/internal/screening/router"
	"github.com/shubhamkumar755/AutismS/internal/screening/schema"

	"github.com/rs/zerolog/log"
	"github.com/shubhamkumar755/AutismS/pkg/httpframework"
	"github.com/shubhamkumar755/AutismS/pkg/logger"
	"github.com/shubhamkumar755/AutismS/pkg/metric"
	"github.com/shubhamkumar755/AutismS/pkg/middleware"
)

type AppConfig struct {
	Configs        configs.Configs
	DynamicConfigs configs.DynamicConfigs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

func (cfg *AppConfig) GetDynamicConfig() interface{} {
	return &cfg.DynamicConfigs
}

var (
	appConfig AppConfig
)

func main() {
	configs.InitConfig(&appConfig)
	logger.Init(appConfig.Configs)
	metric.Init(appConfig.Configs)

	// artifacts that fail to load leave the service up in degraded mode
	artifacts := artifact.Load(artifact.Options{
		ModelPath:      appConfig.Configs.ModelPath,
		EncodersPath:   appConfig.Configs.EncodersPath,
		StrictEncoders: appConfig.Configs.StrictEncoders,
	}, schema.V1)
	screeningHandler := handler.NewScreeningHandler(artifacts)

	httpframework.Init(appConfig.Configs.AppEnv, appConfig.Configs.AppDebug, appConfig.Configs.ExposeErrorDetails,
		cors.New(corsConfig(appConfig.Configs)))
	router.Init(controller.NewController(screeningHandler, appConfig.Configs.ExposeErrorDetails))

	port := appConfig.Configs.AppPort
	if port == 0 {
		port = 5000
		log.Warn().Int("port", port).Msg("App port not set, defaulting to 5000")
	}
	address := net.JoinHostPort(appConfig.Configs.AppHost, strconv.Itoa(port))
	log.Info().Str("address", address).Bool("modelLoaded", artifacts.ModelLoaded()).
		Bool("encodersLoaded", artifacts.EncodersLoaded()).Msg("Starting autism screening backend")
	if err := httpframework.Instance().Run(address); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func corsConfig(cfg configs.Configs) cors.Config {
	config := cors.DefaultConfig()
	var origins []string
	for _, origin := range strings.Split(cfg.CorsAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	return config
}
