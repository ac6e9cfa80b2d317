package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/willow-ren/larkcard/internal/card"
	"github.com/willow-ren/larkcard/internal/render"
)

// Errors reported before any rendering starts.
var (
	ErrMissingWebhook = errors.New("webhook URL not configured (set LARKCARD_WEBHOOK_URL)")
	ErrBadLinkLabel   = errors.New(`link label mode must be "label" or "url"`)
)

// Link label modes: a fixed "view details" literal, or the truncated URL itself.
const (
	LabelFixed = "label"
	LabelURL   = "url"
)

// Duration decodes YAML duration strings like "3s" or "500ms";
// yaml.v3 has no native time.Duration support.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("bad duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds all larkcard configuration: where the card goes, how it
// looks, and how record fields are classified.
type Config struct {
	WebhookURL   string            `yaml:"webhook_url"`
	Title        string            `yaml:"title"`
	HeaderText   string            `yaml:"header_text"`
	Theme        string            `yaml:"theme"`
	Narrow       bool              `yaml:"narrow"`
	Compact      bool              `yaml:"compact"`
	LinkFields   []string          `yaml:"link_fields"`
	LinkBaseURL  string            `yaml:"link_base_url"`
	LinkLabel    string            `yaml:"link_label"`
	StatusFields []string          `yaml:"status_fields"`
	Glyphs       map[string]string `yaml:"glyphs"`
	Timeout      Duration          `yaml:"timeout"`
	LogLevel     string            `yaml:"log_level"`
}

// Default returns the built-in configuration, matching the CLI defaults.
func Default() Config {
	return Config{
		Title:      "System Notice",
		HeaderText: "**Data Report**",
		Theme:      "blue",
		LinkFields: []string{"url", "link", "href"},
		LinkLabel:  LabelFixed,
		Timeout:    Duration(10 * time.Second),
		LogLevel:   "info",
	}
}

// Load builds the configuration: defaults, then an optional YAML file, then
// environment overrides. A .env file is consulted only when
// LARKCARD_WEBHOOK_URL is not already set, so exported credentials win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv layers LARKCARD_* environment variables over the loaded config.
func applyEnv(cfg *Config) {
	if os.Getenv("LARKCARD_WEBHOOK_URL") == "" {
		// Local-development fallback; a missing .env is not an error.
		_ = godotenv.Load()
	}

	if v := os.Getenv("LARKCARD_WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("LARKCARD_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("LARKCARD_LINK_BASE_URL"); v != "" {
		cfg.LinkBaseURL = v
	}
	if v := os.Getenv("LARKCARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LARKCARD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = Duration(d)
		}
	}
}

// Validate checks settings that must be correct before any rendering starts.
// The webhook URL is only required when the run will actually deliver.
func (c Config) Validate(requireWebhook bool) error {
	if !card.ValidTheme(c.Theme) {
		return fmt.Errorf("%w: %q (valid: %s)",
			card.ErrUnknownTheme, c.Theme, strings.Join(card.Themes, ", "))
	}
	if c.LinkLabel != LabelFixed && c.LinkLabel != LabelURL {
		return fmt.Errorf("%w, got %q", ErrBadLinkLabel, c.LinkLabel)
	}
	if requireWebhook && c.WebhookURL == "" {
		return ErrMissingWebhook
	}
	return nil
}

// Rules converts the configuration into the classifier rule set. Configured
// glyphs merge over the defaults; link and status field lists replace the
// defaults when non-empty.
func (c Config) Rules() render.Rules {
	rules := render.DefaultRules()
	if len(c.LinkFields) > 0 {
		rules.LinkFields = toSet(c.LinkFields)
	}
	if len(c.StatusFields) > 0 {
		rules.StatusFields = toSet(c.StatusFields)
	}
	for k, v := range c.Glyphs {
		rules.Glyphs[strings.ToLower(k)] = v
	}
	rules.LinkBaseURL = c.LinkBaseURL
	rules.Compact = c.Compact
	rules.LabelURL = c.LinkLabel == LabelURL
	return rules
}

// Layout converts the configuration into the card-level settings.
func (c Config) Layout() card.Layout {
	return card.Layout{
		Title:      c.Title,
		HeaderText: c.HeaderText,
		Theme:      c.Theme,
		Wide:       !c.Narrow,
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			set[n] = true
		}
	}
	return set
}
