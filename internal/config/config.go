package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Mongo     MongoConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Geosearch GeosearchConfig
	Catalog   CatalogConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// StoreConfig selects which RecordStore backend gets wired at startup.
type StoreConfig struct {
	Backend string // "mongo" or "postgres"
}

type MongoConfig struct {
	URI      string
	Database string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	CatalogSnapshotTTL time.Duration
}

type GeosearchConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
	UserAgent      string
}

type CatalogConfig struct {
	FetchLimit int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Store: StoreConfig{
			Backend: viper.GetString("STORE_BACKEND"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DB"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			CatalogSnapshotTTL: time.Duration(viper.GetInt("CATALOG_SNAPSHOT_TTL")) * time.Second,
		},
		Geosearch: GeosearchConfig{
			BaseURL:        viper.GetString("GEOSEARCH_BASE_URL"),
			RequestTimeout: viper.GetInt("GEOSEARCH_REQUEST_TIMEOUT"),
			UserAgent:      viper.GetString("GEOSEARCH_USER_AGENT"),
		},
		Catalog: CatalogConfig{
			FetchLimit: viper.GetInt("CATALOG_FETCH_LIMIT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "mongo"
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = "mongodb://localhost:27017"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "travelmate"
	}
	if cfg.Cache.CatalogSnapshotTTL == 0 {
		cfg.Cache.CatalogSnapshotTTL = 60 * time.Second
	}
	if cfg.Geosearch.BaseURL == "" {
		cfg.Geosearch.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geosearch.RequestTimeout == 0 {
		cfg.Geosearch.RequestTimeout = 10
	}
	if cfg.Geosearch.UserAgent == "" {
		cfg.Geosearch.UserAgent = "travelmate-console/1.0"
	}
	if cfg.Catalog.FetchLimit == 0 {
		cfg.Catalog.FetchLimit = 40
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
