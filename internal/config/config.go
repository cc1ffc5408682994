package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListenAddr = ":14293"
	DefaultHostRoot   = "/"
	DefaultTokenTTL   = 24 * time.Hour
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	HostRoot   string `yaml:"host_root"`
	LogDir     string `yaml:"log_dir"`
	// NoticePath points at a markdown file served on /api/notice.
	NoticePath string `yaml:"notice_path"`
	Auth       Auth   `yaml:"auth"`
}

type Auth struct {
	// Secret is the base64url (or raw) HS256 signing secret. Empty
	// means an ephemeral secret is generated at startup.
	Secret string `yaml:"secret"`
	// TokenTTL is a Go duration string, e.g. "24h".
	TokenTTL string `yaml:"token_ttl"`
}

// TTL parses Auth.TokenTTL, falling back to the default for empty or
// malformed values.
func (a Auth) TTL() time.Duration {
	if a.TokenTTL == "" {
		return DefaultTokenTTL
	}
	d, err := time.ParseDuration(a.TokenTTL)
	if err != nil || d <= 0 {
		return DefaultTokenTTL
	}
	return d
}

// Load reads the YAML config at path. A missing file yields defaults;
// a malformed file is an error. Environment variables SYSIDD_LISTEN,
// SYSIDD_HOST_ROOT and SYSIDD_JWT_SECRET override the file.
func Load(path string) (Config, error) {
	cfg := Config{
		ListenAddr: DefaultListenAddr,
		HostRoot:   DefaultHostRoot,
	}
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults.
		case err != nil:
			return Config{}, err
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, err
			}
		}
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.HostRoot == "" {
		cfg.HostRoot = DefaultHostRoot
	}

	if v := os.Getenv("SYSIDD_LISTEN"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("SYSIDD_HOST_ROOT"); v != "" {
		cfg.HostRoot = v
	}
	if v := os.Getenv("SYSIDD_JWT_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	return cfg, nil
}
