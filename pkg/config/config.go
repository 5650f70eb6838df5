package config

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	initialized = false
	once        sync.Once
)

// InitEnv makes every config key resolvable from the process environment.
// defaults are registered before AutomaticEnv so that env always wins.
func InitEnv(defaults map[string]interface{}) {
	if initialized {
		log.Debug().Msg("Env already initialized!")
		return
	}
	once.Do(func() {
		for key, value := range defaults {
			viper.SetDefault(key, value)
		}
		viper.AutomaticEnv()
		initialized = true
		log.Info().Int("defaults", len(defaults)).Msg("Env initialized!")
	})
}

// ResetForTesting clears the env bootstrap state. Only for tests.
func ResetForTesting() {
	initialized = false
	once = sync.Once{}
	viper.Reset()
}
