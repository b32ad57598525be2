package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jimezsa/jobscan/internal/filter"
	"github.com/jimezsa/jobscan/internal/models"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "jobscan"
	ConfigFileName = "config.json"
	DirEnv         = "JOBSCAN_CONFIG_DIR"
)

// Config overrides the static scan defaults. The file is JSON5, so comments
// and trailing commas are accepted.
type Config struct {
	TimeoutSeconds int      `json:"timeout_seconds"`
	Concurrency    int      `json:"concurrency"`
	Proxy          string   `json:"proxy,omitempty"`
	KeywordSet     string   `json:"keyword_set"`
	Keywords       []string `json:"keywords,omitempty"`
	DefaultSources []string `json:"default_sources,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		TimeoutSeconds: envInt("JOBSCAN_TIMEOUT", 30),
		Concurrency:    envInt("JOBSCAN_CONCURRENCY", 4),
		Proxy:          envString("JOBSCAN_PROXY", ""),
		KeywordSet:     envString("JOBSCAN_KEYWORD_SET", filter.DefaultKeywordSet),
	}
}

// ScanConfig converts the file settings into runtime options.
func (c Config) ScanConfig() models.ScanConfig {
	timeout := time.Duration(c.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return models.ScanConfig{
		Timeout:     timeout,
		Concurrency: c.Concurrency,
		Proxy:       c.Proxy,
	}
}

// ResolveKeywords returns the configured vocabulary.
func (c Config) ResolveKeywords() (filter.Keywords, error) {
	return filter.Resolve(c.KeywordSet, c.Keywords)
}

func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(DirEnv)); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults. A missing or empty file yields the
// defaults; environment variables still win over the file.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)

	return cfg, nil
}

// Init writes the default config.json if it doesn't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func applyEnv(cfg *Config) {
	if val := strings.TrimSpace(os.Getenv("JOBSCAN_TIMEOUT")); val != "" {
		cfg.TimeoutSeconds = envInt("JOBSCAN_TIMEOUT", cfg.TimeoutSeconds)
	}
	if val := strings.TrimSpace(os.Getenv("JOBSCAN_CONCURRENCY")); val != "" {
		cfg.Concurrency = envInt("JOBSCAN_CONCURRENCY", cfg.Concurrency)
	}
	cfg.Proxy = envString("JOBSCAN_PROXY", cfg.Proxy)
	cfg.KeywordSet = envString("JOBSCAN_KEYWORD_SET", cfg.KeywordSet)
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

// SplitCSV splits a comma-separated flag value, dropping blanks.
func SplitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
