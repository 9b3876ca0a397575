package booking

import (
	"log/slog"
	"strings"
	"time"

	"github.com/goliatone/go-bookform/internal/clock"
	"github.com/goliatone/go-bookform/internal/logging"
	pkgopenapi "github.com/goliatone/go-bookform/pkg/openapi"
	"github.com/goliatone/go-bookform/pkg/render"
)

// SubmitHandler receives every accepted submission.
type SubmitHandler func(Submission)

// Option configures a BookingForm.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	clock        clock.Clock
	messages     render.Catalog
	destinations []string
	rates        map[string]float64
	registered   []string
	emailDelay   time.Duration
	document     *pkgopenapi.Document
	onSubmit     []SubmitHandler
	reference    func() string
}

func defaultConfig() config {
	return config{
		logger:       logging.Discard(),
		clock:        clock.Real(),
		messages:     render.DefaultCatalog(),
		destinations: DefaultDestinations(),
		rates:        DefaultRates(),
		registered:   DefaultRegisteredEmails(),
		emailDelay:   DefaultEmailDelay,
	}
}

// WithLogger sets the structured logger. Nil keeps the default, which
// discards.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock replaces the clock driving the email check and submission
// timestamps.
func WithClock(clk clock.Clock) Option {
	return func(cfg *config) {
		if clk != nil {
			cfg.clock = clk
		}
	}
}

// WithMessages replaces the error message catalog.
func WithMessages(catalog render.Catalog) Option {
	return func(cfg *config) {
		if len(catalog) > 0 {
			cfg.messages = catalog
		}
	}
}

// WithDestinations replaces the destination catalog. Blank entries are
// dropped; an empty list keeps the default.
func WithDestinations(destinations []string) Option {
	return func(cfg *config) {
		var clean []string
		for _, destination := range destinations {
			if trimmed := strings.TrimSpace(destination); trimmed != "" {
				clean = append(clean, trimmed)
			}
		}
		if len(clean) > 0 {
			cfg.destinations = clean
		}
	}
}

// WithRates replaces the travel class rate table.
func WithRates(rates map[string]float64) Option {
	return func(cfg *config) {
		if len(rates) == 0 {
			return
		}
		cfg.rates = make(map[string]float64, len(rates))
		for class, rate := range rates {
			cfg.rates[class] = rate
		}
	}
}

// WithRegisteredEmails replaces the registered-email list.
func WithRegisteredEmails(emails []string) Option {
	return func(cfg *config) {
		if emails != nil {
			cfg.registered = append([]string(nil), emails...)
		}
	}
}

// WithEmailDelay sets the simulated lookup latency. Negative values are
// ignored.
func WithEmailDelay(delay time.Duration) Option {
	return func(cfg *config) {
		if delay >= 0 {
			cfg.emailDelay = delay
		}
	}
}

// WithDocument builds the registry from doc instead of the embedded one.
func WithDocument(doc pkgopenapi.Document) Option {
	return func(cfg *config) {
		cfg.document = &doc
	}
}

// WithSubmitHandler registers fn to receive accepted submissions.
func WithSubmitHandler(fn SubmitHandler) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.onSubmit = append(cfg.onSubmit, fn)
		}
	}
}

// WithReferenceFunc replaces the booking reference generator.
func WithReferenceFunc(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.reference = fn
		}
	}
}
