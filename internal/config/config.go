package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"trivia-quiz/internal/opentdb"
)

const (
	EnvAPIURL      = "TRIVIA_API_URL"
	EnvHTTPTimeout = "TRIVIA_HTTP_TIMEOUT"
	EnvNoColor     = "NO_COLOR"

	defaultHTTPTimeout   = 10 * time.Second
	defaultQuestionCount = 10
)

type Config struct {
	APIURL        string        `yaml:"api_url"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	NoColor       bool          `yaml:"no_color"`
	DefaultAmount int           `yaml:"default_amount"`
}

func Default() Config {
	return Config{
		APIURL:        opentdb.DefaultURL,
		HTTPTimeout:   defaultHTTPTimeout,
		DefaultAmount: defaultQuestionCount,
	}
}

// Load layers an optional YAML file and then the environment over Default.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	normalize(&cfg)
	return cfg, nil
}

// LoadDotEnv fills the process environment from .env files. Missing files
// are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if value := strings.TrimSpace(os.Getenv(EnvAPIURL)); value != "" {
		cfg.APIURL = value
	}
	if value := strings.TrimSpace(os.Getenv(EnvHTTPTimeout)); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHTTPTimeout, err)
		}
		cfg.HTTPTimeout = timeout
	}
	// https://no-color.org: any non-empty value disables color.
	if os.Getenv(EnvNoColor) != "" {
		cfg.NoColor = true
	}
	return nil
}

func normalize(cfg *Config) {
	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	if cfg.APIURL == "" {
		cfg.APIURL = opentdb.DefaultURL
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.DefaultAmount <= 0 {
		cfg.DefaultAmount = defaultQuestionCount
	}
}
