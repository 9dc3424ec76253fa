/**
 * @description
 * This package handles the configuration management for the service. It uses
 * the Viper library to read configuration from environment variables or an
 * optional local .env file.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort        string `mapstructure:"SERVER_PORT"`
	AdminAPIBaseURL   string `mapstructure:"ADMIN_API_BASE_URL"`
	AdminServiceToken string `mapstructure:"ADMIN_SERVICE_TOKEN"`
	AdminDashboardURL string `mapstructure:"ADMIN_DASHBOARD_URL"`
}

// LoadConfig reads configuration from environment variables, looking for an
// optional .env file in the given path.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The console integration has run on port 3000 since the first version.
	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("ADMIN_API_BASE_URL", "https://admin-api.upcomers.com")
	viper.SetDefault("ADMIN_DASHBOARD_URL", "https://admin.upcomers.com")

	// Bind env vars explicitly so they survive Unmarshal.
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("ADMIN_API_BASE_URL")
	_ = viper.BindEnv("ADMIN_SERVICE_TOKEN")
	_ = viper.BindEnv("ADMIN_DASHBOARD_URL")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Error reading config file, falling back to environment: %v", err)
		}
		err = nil
	}

	// Unmarshal the configuration into the Config struct.
	if err = viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}
