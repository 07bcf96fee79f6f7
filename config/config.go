package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the assistant service.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Ollama    OllamaConfig    `mapstructure:"ollama"`
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Scrape    ScrapeConfig    `mapstructure:"scrape"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// OllamaConfig contains the generation backend settings. Decoding
// parameters are fixed per process so responses stay reproducible.
type OllamaConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Model          string        `mapstructure:"model"`
	EmbeddingModel string        `mapstructure:"embedding_model"`
	Temperature    float64       `mapstructure:"temperature"`
	TopP           float64       `mapstructure:"top_p"`
	NumPredict     int           `mapstructure:"num_predict"`
	Timeout        time.Duration `mapstructure:"timeout"`
	ProbeTimeout   time.Duration `mapstructure:"probe_timeout"`
}

func (o OllamaConfig) Validate() error {
	if strings.TrimSpace(o.BaseURL) == "" {
		return errors.New("ollama.base_url required")
	}
	if strings.TrimSpace(o.Model) == "" {
		return errors.New("ollama.model required")
	}
	return nil
}

// KnowledgeConfig contains retrieval settings.
type KnowledgeConfig struct {
	CorpusPath string `mapstructure:"corpus_path"`
	TopK       int    `mapstructure:"top_k"`
	// ScoreThreshold filters vector hits below the given cosine similarity.
	// 0 disables the floor: top-k documents are injected regardless of score.
	ScoreThreshold float64 `mapstructure:"score_threshold"`
}

func (k KnowledgeConfig) Validate() error {
	if strings.TrimSpace(k.CorpusPath) == "" {
		return errors.New("knowledge.corpus_path required")
	}
	if k.TopK <= 0 {
		return errors.New("knowledge.top_k must be > 0")
	}
	return nil
}

// CacheConfig selects the augmentation cache backend.
type CacheConfig struct {
	Backend string        `mapstructure:"backend"` // "inmemory" or "redis"
	TTL     time.Duration `mapstructure:"ttl"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

func (c CacheConfig) Validate() error {
	switch c.Backend {
	case "inmemory":
	case "redis":
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cache.backend must be inmemory or redis, got %q", c.Backend)
	}
	if c.TTL <= 0 {
		return errors.New("cache.ttl must be > 0")
	}
	return nil
}

// RedisConfig contains Redis connection settings.
type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func (r RedisConfig) Validate() error {
	if strings.TrimSpace(r.Host) == "" {
		return errors.New("cache.redis.host required")
	}
	if strings.TrimSpace(r.Port) == "" {
		return errors.New("cache.redis.port required")
	}
	return nil
}

// ScrapeConfig bounds the live-source fetches. One attempt per source, no
// retries; a slow government site must not stall a resolution.
type ScrapeConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxItems int           `mapstructure:"max_items"`
}

// LoadConfig loads config from file, with NYAYA_* environment overrides.
// A missing config file is fine; defaults cover a local setup.
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("ollama.base_url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3:8b")
	viper.SetDefault("ollama.embedding_model", "nomic-embed-text")
	viper.SetDefault("ollama.temperature", 0.7)
	viper.SetDefault("ollama.top_p", 0.9)
	viper.SetDefault("ollama.num_predict", 500)
	viper.SetDefault("ollama.timeout", time.Minute)
	viper.SetDefault("ollama.probe_timeout", 5*time.Second)
	viper.SetDefault("knowledge.corpus_path", "data/knowledge_base.json")
	viper.SetDefault("knowledge.top_k", 2)
	viper.SetDefault("knowledge.score_threshold", 0.0)
	viper.SetDefault("cache.backend", "inmemory")
	viper.SetDefault("cache.ttl", time.Hour)
	viper.SetDefault("cache.redis.timeout", 5*time.Second)
	viper.SetDefault("scrape.timeout", 10*time.Second)
	viper.SetDefault("scrape.max_items", 5)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("NYAYA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Ollama.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Knowledge.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Cache.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
