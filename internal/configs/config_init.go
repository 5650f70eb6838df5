package configs

import (
	"log"

	"github.com/shubhamkumar755/AutismS/pkg/config"
	"github.com/spf13/viper"
)

// ConfigHolder interface for app config
type ConfigHolder interface {
	GetStaticConfig() interface{}
	GetDynamicConfig() interface{}
}

// Defaults mirror the values the service has always been started with.
var Defaults = map[string]interface{}{
	"app_name":                 "autismscope",
	"app_env":                  "local",
	"app_log_level":            "INFO",
	"app_metric_sampling_rate": 1.0,
	"app_host":                 "0.0.0.0",
	"app_port":                 5000,
	"app_debug":                true,
	"telegraf_host":            "localhost",
	"telegraf_port":            "8125",
	"model_path":               "best_model.json",
	"encoders_path":            "encoders.json",
	"strict_encoders":          false,
	"expose_error_details":     true,
	"cors_allowed_origins":     "*",
}

// InitConfig loads Configs from environment variables
func InitConfig(configHolder ConfigHolder) {
	config.InitEnv(Defaults)

	staticConfig := configHolder.GetStaticConfig()
	cfg, ok := staticConfig.(*Configs)
	if !ok {
		log.Fatal("Failed to cast static config to *Configs")
	}

	// This maps APP_NAME (env) -> app_name (config key)
	bindEnvVars()

	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to unmarshal config from environment: %v", err)
	}

	log.Println("Configuration loaded from environment variables")
}

func bindEnvVars() {
	// Application config
	viper.BindEnv("app_name", "APP_NAME")
	viper.BindEnv("app_env", "APP_ENV")
	viper.BindEnv("app_log_level", "APP_LOG_LEVEL")
	viper.BindEnv("app_metric_sampling_rate", "APP_METRIC_SAMPLING_RATE")
	viper.BindEnv("app_host", "APP_HOST")
	viper.BindEnv("app_port", "APP_PORT")
	viper.BindEnv("app_debug", "APP_DEBUG")

	// Metrics / Telegraf config
	viper.BindEnv("telegraf_host", "TELEGRAF_HOST")
	viper.BindEnv("telegraf_port", "TELEGRAF_PORT")

	// Artifacts
	viper.BindEnv("model_path", "MODEL_PATH")
	viper.BindEnv("encoders_path", "ENCODERS_PATH")
	viper.BindEnv("strict_encoders", "STRICT_ENCODERS")

	// Http
	viper.BindEnv("expose_error_details", "EXPOSE_ERROR_DETAILS")
	viper.BindEnv("cors_allowed_origins", "CORS_ALLOWED_ORIGINS")
}
