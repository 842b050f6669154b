package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	AppName    = "Karaku"
	AppVersion = "1.0.0"
)

// UserAgent identifies outgoing catalog and translator requests.
var UserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + ")"

// Translator providers
const (
	TranslatorAzure      = "azure"
	TranslatorOpenAI     = "openai"
	TranslatorAnthropic  = "anthropic"
	TranslatorCompatible = "compatible"
)

// DefaultAzureBaseURL is used when the azure provider has no BASE_URL.
const DefaultAzureBaseURL = "https://api.cognitive.microsofttranslator.com/"

// Update policies for a missing row
const (
	UpdateMissingIgnore = "ignore"
	UpdateMissingError  = "error"
)

type Config struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	DataDir       string        `env:"DATA_DIR" envDefault:"./data"`
	DBPath        string        `env:"DB_PATH"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	ProxyURL      string        `env:"PROXY_URL"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"0s"`
	Workers       int           `env:"WORKERS" envDefault:"4"`
	UpdateMissing string        `env:"UPDATE_MISSING" envDefault:"ignore"`
	SnowflakeNode int64         `env:"SNOWFLAKE_NODE" envDefault:"1"`

	CatalogURL     string        `env:"CATALOG_URL" envDefault:"https://rickandmortyapi.com/api/"`
	CatalogRefresh time.Duration `env:"CATALOG_REFRESH" envDefault:"0s"`

	Translator Translator `envPrefix:"TRANSLATOR_"`
}

type Translator struct {
	Provider   string        `env:"PROVIDER" envDefault:"azure"`
	BaseURL    string        `env:"BASE_URL"`
	APIVersion string        `env:"API_VERSION" envDefault:"3.0"`
	Key        string        `env:"KEY"`
	Region     string        `env:"REGION" envDefault:"canadacentral"`
	Model      string        `env:"MODEL"`
	QPS        int           `env:"QPS" envDefault:"10"`
	CacheTTL   time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// Load reads KARAKU_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "KARAKU_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "karaku.db")
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)
	cfg.DataDir = filepath.Clean(cfg.DataDir)

	switch cfg.UpdateMissing {
	case UpdateMissingIgnore, UpdateMissingError:
	default:
		return Config{}, fmt.Errorf("invalid KARAKU_UPDATE_MISSING %q", cfg.UpdateMissing)
	}
	switch cfg.Translator.Provider {
	case TranslatorAzure, TranslatorOpenAI, TranslatorAnthropic, TranslatorCompatible:
	default:
		return Config{}, fmt.Errorf("invalid KARAKU_TRANSLATOR_PROVIDER %q", cfg.Translator.Provider)
	}
	if cfg.Translator.Provider == TranslatorAzure && cfg.Translator.BaseURL == "" {
		cfg.Translator.BaseURL = DefaultAzureBaseURL
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return cfg, nil
}
