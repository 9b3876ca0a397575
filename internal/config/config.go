// Package config loads the booking CLI configuration through viper: a YAML
// file, BOOKFORM_ environment variables and command flags, in increasing
// precedence.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-bookform/internal/logging"
	"github.com/goliatone/go-bookform/pkg/booking"
)

// EnvPrefix prefixes every environment override, e.g. BOOKFORM_LOG_LEVEL.
const EnvPrefix = "BOOKFORM"

// Output formats for submissions.
const (
	OutputJSON   = "json"
	OutputYAML   = "yaml"
	OutputPretty = "pretty"
)

var errInvalid = errors.New("config: invalid")

// Config is the resolved CLI configuration.
type Config struct {
	EmailCheck struct {
		Delay      time.Duration `mapstructure:"delay"`
		Registered []string      `mapstructure:"registered"`
	} `mapstructure:"email_check"`
	Destinations []string `mapstructure:"destinations"`
	Rates        []Rate   `mapstructure:"rates"`
	Log          struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Registry  string    `mapstructure:"registry"`
	Output    string    `mapstructure:"output"`
	Templates string    `mapstructure:"templates"`
	Messages  []Message `mapstructure:"messages"`
}

// Rate prices one travel class. Rates and messages are lists because viper
// lower-cases map keys.
type Rate struct {
	Class string  `mapstructure:"class"`
	Rate  float64 `mapstructure:"rate"`
}

// Message overrides the text shown for one validation kind.
type Message struct {
	Kind string `mapstructure:"kind"`
	Text string `mapstructure:"text"`
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("email_check.delay", booking.DefaultEmailDelay)
	v.SetDefault("email_check.registered", booking.DefaultRegisteredEmails())
	v.SetDefault("destinations", booking.DefaultDestinations())
	v.SetDefault("rates", defaultRates())
	v.SetDefault("log.level", "info")
	v.SetDefault("output", OutputPretty)
	v.SetDefault("templates", "")
	v.SetDefault("registry", "")
	return v
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// Load decodes v into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.EmailCheck.Delay < 0 {
		return fmt.Errorf("%w: email_check.delay must not be negative", errInvalid)
	}
	switch c.Output {
	case OutputJSON, OutputYAML, OutputPretty:
	default:
		return fmt.Errorf("%w: output must be json, yaml or pretty, got %q", errInvalid, c.Output)
	}
	for _, rate := range c.Rates {
		if strings.TrimSpace(rate.Class) == "" {
			return fmt.Errorf("%w: rate without class", errInvalid)
		}
		if rate.Rate < 0 {
			return fmt.Errorf("%w: rate for %q must not be negative", errInvalid, rate.Class)
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", errInvalid, err)
	}
	return nil
}

// BookingOptions maps the configuration onto booking options.
func (c Config) BookingOptions() []booking.Option {
	return []booking.Option{
		booking.WithEmailDelay(c.EmailCheck.Delay),
		booking.WithRegisteredEmails(c.EmailCheck.Registered),
		booking.WithDestinations(c.Destinations),
		booking.WithRates(c.RateTable()),
	}
}

// RateTable returns the rates keyed by class.
func (c Config) RateTable() map[string]float64 {
	out := make(map[string]float64, len(c.Rates))
	for _, rate := range c.Rates {
		out[strings.TrimSpace(rate.Class)] = rate.Rate
	}
	return out
}

// MessageOverrides returns the message overrides keyed by kind.
func (c Config) MessageOverrides() map[string]string {
	out := make(map[string]string, len(c.Messages))
	for _, msg := range c.Messages {
		out[strings.TrimSpace(msg.Kind)] = msg.Text
	}
	return out
}

func defaultRates() []map[string]any {
	rates := booking.DefaultRates()
	classes := make([]string, 0, len(rates))
	for class := range rates {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return rates[classes[i]] < rates[classes[j]] })
	out := make([]map[string]any, 0, len(classes))
	for _, class := range classes {
		out = append(out, map[string]any{"class": class, "rate": rates[class]})
	}
	return out
}
