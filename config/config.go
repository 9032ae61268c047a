// config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Catalog       CatalogConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Log           LogConfiguration
	RateLimit     RateLimitConfiguration
	Auth          AuthConfiguration
	Session       SessionConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// CatalogConfiguration points at the catalog REST API the console talks to
type CatalogConfiguration struct {
	BaseURL    string
	Timeout    time.Duration
	MaxResults int
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr     string
	DraftTTL time.Duration
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL   string
	Index string
}

// LogConfiguration controls where and how log files are rotated
type LogConfiguration struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// RateLimitConfiguration bounds requests per client
type RateLimitConfiguration struct {
	Requests int
	Window   time.Duration
}

// AuthConfiguration verifies console tokens. An empty secret skips verification.
type AuthConfiguration struct {
	JWTSecret string
}

// SessionConfiguration bounds how long an idle session keeps its caches
type SessionConfiguration struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	return viper.Unmarshal(&config)
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("catalog.baseURL", "http://localhost:8585/api")
	viper.SetDefault("catalog.timeout", "30s")
	// Matches the catalog's API_RES_MAX_SIZE used for "load everything" listings
	viper.SetDefault("catalog.maxResults", 100000)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.draftTTL", "30m")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "console-audit")
	viper.SetDefault("log.dir", "logging")
	viper.SetDefault("log.maxSizeMB", 100)
	viper.SetDefault("log.maxBackups", 5)
	viper.SetDefault("log.maxAgeDays", 14)
	viper.SetDefault("rateLimit.requests", 100)
	viper.SetDefault("rateLimit.window", "1m")
	viper.SetDefault("auth.jwtSecret", "")
	viper.SetDefault("session.idleTimeout", "30m")
	viper.SetDefault("session.sweepInterval", "5m")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
