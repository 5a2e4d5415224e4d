package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Import   ImportConfig   `yaml:"import"`
	Matching MatchingConfig `yaml:"matching"`
	Cache    CacheConfig    `yaml:"cache"`
	Storage  StorageConfig  `yaml:"storage"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id,X-User-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxUploadSize bounds a multipart import request body, in bytes.
	MaxUploadSize int64 `yaml:"max_upload_size" env:"SERVER_MAX_UPLOAD_SIZE" env-default:"104857600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// ApplicationName shows up in pg_stat_activity.
	ApplicationName string `yaml:"application_name" env:"DATABASE_APPLICATION_NAME" env-default:"returns-backend"`
	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ImportConfig holds batch label import settings.
type ImportConfig struct {
	Workers           int           `yaml:"workers"             env:"IMPORT_WORKERS"             env-default:"1"`
	ExtractTimeout    time.Duration `yaml:"extract_timeout"     env:"IMPORT_EXTRACT_TIMEOUT"     env-default:"30s"`
	PdftotextPath     string        `yaml:"pdftotext_path"      env:"IMPORT_PDFTOTEXT_PATH"      env-default:"pdftotext"`
	MaxFileSize       int64         `yaml:"max_file_size"       env:"IMPORT_MAX_FILE_SIZE"       env-default:"20971520"`
	DefaultReturnType string        `yaml:"default_return_type" env:"IMPORT_DEFAULT_RETURN_TYPE" env-default:"pre_receipt"`
	// RateLimit caps upload requests per client per minute. 0 disables it.
	RateLimit int `yaml:"rate_limit" env:"IMPORT_RATE_LIMIT" env-default:"30"`
}

// MatchingConfig tunes the product title strategies.
type MatchingConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold" env:"MATCHING_SIMILARITY_THRESHOLD" env-default:"0.3"`
	RankLimit           int     `yaml:"rank_limit"           env:"MATCHING_RANK_LIMIT"           env-default:"5"`
	SubstringConfidence float64 `yaml:"substring_confidence" env:"MATCHING_SUBSTRING_CONFIDENCE" env-default:"0.5"`
}

// CacheConfig holds the catalog lookup cache settings. An empty RedisAddr
// disables the cache.
type CacheConfig struct {
	RedisAddr string        `yaml:"redis_addr" env:"CACHE_REDIS_ADDR"`
	TTL       time.Duration `yaml:"ttl"        env:"CACHE_TTL"        env-default:"10m"`
}

// Enabled reports whether a Redis address is configured.
func (c CacheConfig) Enabled() bool { return strings.TrimSpace(c.RedisAddr) != "" }

// StorageConfig holds label file storage settings. An empty LabelDir means
// uploaded labels are not kept.
type StorageConfig struct {
	LabelDir string `yaml:"label_dir" env:"STORAGE_LABEL_DIR"`
}

// Enabled reports whether a label directory is configured.
func (c StorageConfig) Enabled() bool { return strings.TrimSpace(c.LabelDir) != "" }
