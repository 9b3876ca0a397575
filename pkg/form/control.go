package form

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/goliatone/go-bookform/internal/logging"
	"github.com/goliatone/go-bookform/pkg/validation"
)

// AsyncValidator checks a value that already passed every synchronous rule.
// It reports the outcome through resolve (nil errors mean valid) and returns
// a cancel function the Control calls when a newer value supersedes the
// check. Calling resolve before Validate returns is allowed.
type AsyncValidator interface {
	Validate(value any, resolve func(validation.Errors)) (cancel func())
}

// AsyncValidatorFunc adapts a function into an AsyncValidator.
type AsyncValidatorFunc func(value any, resolve func(validation.Errors)) func()

// Validate delegates to the underlying function.
func (fn AsyncValidatorFunc) Validate(value any, resolve func(validation.Errors)) func() {
	return fn(value, resolve)
}

// Control is a single named input slot.
type Control struct {
	value   any
	initial any
	rules   []validation.Rule
	async   AsyncValidator
	logger  *slog.Logger

	syncErrs  validation.Errors
	asyncErrs validation.Errors
	status    Status
	touched   bool

	seq    uint64
	cancel func()

	parent     container
	valueSubs  listeners[any]
	statusSubs listeners[Status]
}

// ControlOption configures a Control.
type ControlOption func(*Control)

// WithRules attaches synchronous rules.
func WithRules(rules ...validation.Rule) ControlOption {
	return func(c *Control) {
		c.rules = append(c.rules, rules...)
	}
}

// WithAsyncValidator attaches an asynchronous validator.
func WithAsyncValidator(v AsyncValidator) ControlOption {
	return func(c *Control) {
		c.async = v
	}
}

// WithControlLogger sets the logger used to report dropped async results.
func WithControlLogger(logger *slog.Logger) ControlOption {
	return func(c *Control) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewControl creates a Control holding initial and runs its synchronous rules
// once. Asynchronous validators only run on later value changes.
func NewControl(initial any, opts ...ControlOption) *Control {
	c := &Control{
		value:   initial,
		initial: initial,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.syncErrs = validation.Evaluate(c.rules, c.value)
	c.status = statusFromErrors(c.syncErrs)
	return c
}

// Value returns the current value.
func (c *Control) Value() any { return c.value }

// Status returns the current status.
func (c *Control) Status() Status { return c.status }

// Valid reports whether the status is VALID.
func (c *Control) Valid() bool { return c.status == StatusValid }

// Pending reports whether an asynchronous check is in flight.
func (c *Control) Pending() bool { return c.status == StatusPending }

// Touched reports whether the control was marked as touched.
func (c *Control) Touched() bool { return c.touched }

// MarkAsTouched flags the control as interacted with.
func (c *Control) MarkAsTouched() { c.touched = true }

// MarkAllAsTouched is MarkAsTouched for a leaf.
func (c *Control) MarkAllAsTouched() { c.touched = true }

// MarkAsUntouched clears the touched flag.
func (c *Control) MarkAsUntouched() { c.touched = false }

// Errors returns the failed rules, synchronous and asynchronous combined.
// Nil while the control is valid or pending.
func (c *Control) Errors() validation.Errors {
	return validation.Merge(c.syncErrs, c.asyncErrs)
}

// HasError reports whether kind is among the current errors.
func (c *Control) HasError(kind validation.Kind) bool {
	return c.syncErrs.Has(kind) || c.asyncErrs.Has(kind)
}

// Subscribe registers fn for value changes.
func (c *Control) Subscribe(fn func(value any)) (unsubscribe func()) {
	return c.valueSubs.add(fn)
}

// SubscribeStatus registers fn for status changes, including async
// resolutions.
func (c *Control) SubscribeStatus(fn func(status Status)) (unsubscribe func()) {
	return c.statusSubs.add(fn)
}

// SetValue replaces the value, re-runs validation and notifies subscribers
// and the parent chain. Synchronous rules always complete before an
// asynchronous check is dispatched.
func (c *Control) SetValue(value any) {
	c.value = value
	c.updateValueAndValidity(true)
}

// Reset restores the initial value and clears the touched flag.
func (c *Control) Reset() {
	c.touched = false
	c.SetValue(c.initial)
}

// UpdateValueAndValidity re-runs validation without changing the value.
func (c *Control) UpdateValueAndValidity() {
	c.updateValueAndValidity(true)
}

func (c *Control) updateValueAndValidity(emitValue bool) {
	c.cancelPending()
	c.asyncErrs = nil
	c.syncErrs = validation.Evaluate(c.rules, c.value)
	c.status = statusFromErrors(c.syncErrs)
	if c.status == StatusValid && c.async != nil {
		c.runAsync()
	}

	if emitValue {
		c.valueSubs.emit(c.value)
	}
	c.statusSubs.emit(c.status)
	if c.parent != nil {
		c.parent.childChanged(emitValue)
	}
}

func (c *Control) runAsync() {
	c.seq++
	seq := c.seq
	dispatched := c.value
	c.status = StatusPending

	var (
		mu       sync.Mutex
		returned bool
		inline   *validation.Errors
	)
	resolve := func(errs validation.Errors) {
		mu.Lock()
		if !returned {
			inline = &errs
			mu.Unlock()
			return
		}
		mu.Unlock()
		c.dispatch(func() { c.resolveAsync(seq, dispatched, errs) })
	}

	cancel := c.async.Validate(dispatched, resolve)

	mu.Lock()
	returned = true
	immediate := inline
	mu.Unlock()

	if immediate != nil {
		c.applyAsync(*immediate)
		return
	}
	c.cancel = cancel
}

// resolveAsync applies a late result unless a newer value or check has
// superseded the one it was dispatched for.
func (c *Control) resolveAsync(seq uint64, dispatched any, errs validation.Errors) {
	if seq != c.seq || c.status != StatusPending || !reflect.DeepEqual(dispatched, c.value) {
		c.logger.Debug("form: dropping stale async result",
			slog.Uint64("seq", seq),
			slog.Uint64("current_seq", c.seq),
			slog.Any("value", dispatched),
		)
		return
	}
	c.cancel = nil
	c.applyAsync(errs)
	c.statusSubs.emit(c.status)
	if c.parent != nil {
		c.parent.childChanged(false)
	}
}

func (c *Control) applyAsync(errs validation.Errors) {
	if len(errs) == 0 {
		c.asyncErrs = nil
	} else {
		c.asyncErrs = errs
	}
	c.status = statusFromErrors(validation.Merge(c.syncErrs, c.asyncErrs))
}

func (c *Control) cancelPending() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Close cancels any in-flight asynchronous check.
func (c *Control) Close() {
	c.cancelPending()
	c.seq++
}

func (c *Control) dispatch(fn func()) {
	if c.parent == nil {
		fn()
		return
	}
	c.parent.dispatcher()(fn)
}

func (c *Control) setParent(parent container) { c.parent = parent }

func statusFromErrors(errs validation.Errors) Status {
	if len(errs) > 0 {
		return StatusInvalid
	}
	return StatusValid
}
