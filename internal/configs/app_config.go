package configs

type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppHost               string  `mapstructure:"app_host"`
	AppPort               int     `mapstructure:"app_port"`
	AppDebug              bool    `mapstructure:"app_debug"`

	// Telegraf configuration
	TelegrafHost string `mapstructure:"telegraf_host"`
	TelegrafPort string `mapstructure:"telegraf_port"`

	// Artifact configuration
	ModelPath      string `mapstructure:"model_path"`
	EncodersPath   string `mapstructure:"encoders_path"`
	StrictEncoders bool   `mapstructure:"strict_encoders"`

	// Http configuration
	ExposeErrorDetails bool   `mapstructure:"expose_error_details"`
	CorsAllowedOrigins string `mapstructure:"cors_allowed_origins"`
}

type DynamicConfigs struct{}
