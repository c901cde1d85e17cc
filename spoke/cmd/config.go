package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"lgsmfleet/spoke/adapters/osusers"
	"lgsmfleet/spoke/domain"

	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPPort    = 49950
	defaultMinUID      = 1000
	defaultHomeRoot    = "/home"
	defaultPasswdPath  = "/etc/passwd"
	defaultStreamGrace = 2 * time.Second
)

type HubConfig struct {
	URL         string
	APIKey      string
	SpokeName   string
	AdvertiseIP string
}

type SpokeConfig struct {
	APIKey       string
	HTTPPort     int
	Users        osusers.Config
	Rules        domain.ScriptRules
	LogPatterns  []string
	ExtraActions []string
	StreamGrace  time.Duration
	Hub          HubConfig
}

// fileConfig is the optional YAML file named by CONFIG_PATH. Empty lists keep the defaults.
type fileConfig struct {
	Suffixes     []string `yaml:"suffixes"`
	Signatures   []string `yaml:"signatures"`
	Exclusions   []string `yaml:"exclusions"`
	HeadBytes    int      `yaml:"head_bytes"`
	LogPatterns  []string `yaml:"log_patterns"`
	ExtraActions []string `yaml:"extra_actions"`
}

// LoadConfig loads configuration from environment variables and the optional
// CONFIG_PATH YAML file. API_KEY is required.
func LoadConfig() (*SpokeConfig, error) {
	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("API_KEY is required")
	}

	httpPort, err := intEnv("PORT", defaultHTTPPort)
	if err != nil {
		return nil, err
	}
	minUID, err := intEnv("MIN_UID", defaultMinUID)
	if err != nil {
		return nil, err
	}
	streamGrace, err := durationEnv("STREAM_GRACE", defaultStreamGrace)
	if err != nil {
		return nil, err
	}

	cfg := &SpokeConfig{
		APIKey:   apiKey,
		HTTPPort: httpPort,
		Users: osusers.Config{
			Users:      stringEnv("MANAGED_USERS", osusers.ModeAuto),
			PasswdPath: stringEnv("PASSWD_PATH", defaultPasswdPath),
			HomeRoot:   stringEnv("HOME_ROOT", defaultHomeRoot),
			MinUID:     minUID,
		},
		Rules:       domain.DefaultScriptRules(),
		LogPatterns: domain.DefaultLogPatterns,
		StreamGrace: streamGrace,
		Hub: HubConfig{
			URL:         os.Getenv("HUB_URL"),
			APIKey:      os.Getenv("HUB_API_KEY"),
			SpokeName:   os.Getenv("SPOKE_NAME"),
			AdvertiseIP: os.Getenv("ADVERTISE_IP"),
		},
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open CONFIG_PATH: %w", err)
		}
		defer f.Close()
		if err := applyFile(cfg, f); err != nil {
			return nil, fmt.Errorf("invalid CONFIG_PATH %s: %w", path, err)
		}
	}
	cfg.ExtraActions = append(cfg.ExtraActions, splitList(os.Getenv("EXTRA_ACTIONS"))...)

	if cfg.Hub.URL != "" && cfg.Hub.APIKey == "" {
		return nil, fmt.Errorf("HUB_API_KEY is required when HUB_URL is set")
	}
	return cfg, nil
}

func applyFile(cfg *SpokeConfig, r io.Reader) error {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if len(fc.Suffixes) > 0 {
		cfg.Rules.Suffixes = fc.Suffixes
	}
	if len(fc.Signatures) > 0 {
		cfg.Rules.Signatures = fc.Signatures
	}
	if len(fc.Exclusions) > 0 {
		cfg.Rules.Exclusions = fc.Exclusions
	}
	if fc.HeadBytes < 0 {
		return fmt.Errorf("head_bytes must not be negative")
	}
	if fc.HeadBytes > 0 {
		cfg.Rules.HeadBytes = fc.HeadBytes
	}
	if len(fc.LogPatterns) > 0 {
		for _, p := range fc.LogPatterns {
			if !strings.Contains(p, "{script}") {
				return fmt.Errorf("log pattern %q has no {script} placeholder", p)
			}
		}
		cfg.LogPatterns = fc.LogPatterns
	}
	cfg.ExtraActions = append(cfg.ExtraActions, fc.ExtraActions...)
	return nil
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
