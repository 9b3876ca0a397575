package booking

import (
	"strings"
	"time"

	"github.com/goliatone/go-bookform/internal/clock"
	"github.com/goliatone/go-bookform/pkg/validation"
)

// DefaultEmailDelay is the simulated lookup latency.
const DefaultEmailDelay = time.Second

// DefaultRegisteredEmails lists the addresses treated as already registered.
func DefaultRegisteredEmails() []string {
	return []string{"test@test.com", "reserva@viajes.com", "admin@travel.com"}
}

// EmailChecker is an in-memory stand-in for a registered-email lookup. Each
// check resolves after a fixed delay.
type EmailChecker struct {
	clock      clock.Clock
	delay      time.Duration
	registered map[string]struct{}
}

// NewEmailChecker builds a checker against registered. Addresses compare
// case-insensitively.
func NewEmailChecker(clk clock.Clock, delay time.Duration, registered []string) *EmailChecker {
	if clk == nil {
		clk = clock.Real()
	}
	set := make(map[string]struct{}, len(registered))
	for _, email := range registered {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			set[email] = struct{}{}
		}
	}
	return &EmailChecker{clock: clk, delay: delay, registered: set}
}

// Exists reports whether email is registered.
func (c *EmailChecker) Exists(email string) bool {
	_, ok := c.registered[strings.ToLower(email)]
	return ok
}

// Validate schedules the lookup. An empty value resolves valid immediately.
// The returned cancel stops the pending timer.
func (c *EmailChecker) Validate(value any, resolve func(validation.Errors)) func() {
	email, _ := value.(string)
	if email == "" {
		resolve(nil)
		return func() {}
	}
	timer := c.clock.AfterFunc(c.delay, func() {
		if c.Exists(email) {
			resolve(validation.Errors{
				validation.KindEmailExists: {Kind: validation.KindEmailExists},
			})
			return
		}
		resolve(nil)
	})
	return func() { timer.Stop() }
}
