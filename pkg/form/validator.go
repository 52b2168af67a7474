package form

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formvalidate/pkg/logger"
	"github.com/dmitrymomot/formvalidate/pkg/validator"
)

// lineBreak terminates every appended message.
const lineBreak = "<br />"

// Result is the outcome of one validation call.
type Result struct {
	Kind Kind
	// Applied is false when no verdict was produced: for resets and for
	// unknown kinds.
	Applied bool
	// Valid is true when every target passed. Always false if !Applied.
	Valid bool
	// Failures holds one entry per failing target, in target order. Field is
	// the target's name and Message the rendered message.
	Failures validator.ValidationErrors
	// Invalid holds the failing targets, parallel to Failures.
	Invalid []Element
}

// Err returns the failures as an error, or nil when there are none.
func (r Result) Err() error {
	if r.Failures.IsEmpty() {
		return nil
	}
	return r.Failures
}

// Validator runs validation calls against one document.
// Calls are serialized, so messages from concurrent callers never interleave
// in the alert box; they are appended in call order.
type Validator struct {
	mu       sync.Mutex
	doc      Document
	defaults Config
	log      *slog.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithDefaults replaces the built-in defaults for every call of the validator.
func WithDefaults(cfg Config) ValidatorOption {
	return func(v *Validator) { v.defaults = cfg }
}

// WithLogger sets the logger for per-field diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// New creates a validator. doc locates the alert box; with a nil doc no
// messages are written but borders and verdicts work as usual.
func New(doc Document, opts ...ValidatorOption) *Validator {
	v := &Validator{
		doc:      doc,
		defaults: DefaultConfig(),
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Defaults returns the configuration that options are merged onto.
func (v *Validator) Defaults() Config {
	return v.defaults
}

// Resolve returns the effective configuration for the given options.
func (v *Validator) Resolve(opts ...Option) Config {
	return Resolve(v.defaults, buildOverrides(opts))
}

// Validate checks targets with the configured kind. ok is false when the
// call produces no verdict (reset or unknown kind); otherwise valid reports
// whether every target passed.
func (v *Validator) Validate(targets []Element, opts ...Option) (valid, ok bool) {
	res := v.Run(targets, opts...)
	return res.Valid, res.Applied
}

// Run is Validate with the per-field failures included.
func (v *Validator) Run(targets []Element, opts ...Option) Result {
	cfg := v.Resolve(opts...)

	v.mu.Lock()
	defer v.mu.Unlock()

	return v.apply(cfg, targets)
}

// Reset restores the border of every field inside targets and empties the
// alert box.
func (v *Validator) Reset(targets []Element, opts ...Option) {
	v.Run(targets, withKind(opts, KindReset)...)
}

// Required reports whether no target is blank.
func (v *Validator) Required(targets []Element, opts ...Option) bool {
	valid, _ := v.Validate(targets, withKind(opts, KindRequired)...)
	return valid
}

// Email reports whether every target is shaped like an e-mail address.
func (v *Validator) Email(targets []Element, opts ...Option) bool {
	valid, _ := v.Validate(targets, withKind(opts, KindEmail)...)
	return valid
}

// Numeric reports whether every target reads as a number.
func (v *Validator) Numeric(targets []Element, opts ...Option) bool {
	valid, _ := v.Validate(targets, withKind(opts, KindNumeric)...)
	return valid
}

// Date reports whether every target is shaped like a date.
func (v *Validator) Date(targets []Element, opts ...Option) bool {
	valid, _ := v.Validate(targets, withKind(opts, KindDate)...)
	return valid
}

// withKind appends a kind option without touching the caller's slice.
func withKind(opts []Option, k Kind) []Option {
	return append(opts[:len(opts):len(opts)], WithKind(k))
}

func (v *Validator) apply(cfg Config, targets []Element) Result {
	res := Result{Kind: cfg.Kind}

	if cfg.Kind == KindReset {
		v.reset(cfg, targets)
		return res
	}

	r, ok := rules[cfg.Kind]
	if !ok {
		v.log.Debug("unknown validation kind, nothing to do", logger.Kind(cfg.Kind.String()))
		return res
	}

	res.Applied = true
	res.Valid = true
	for _, el := range targets {
		name := el.Name()
		check := r.check(name, el.Value())
		if check.Check() {
			continue
		}

		res.Valid = false
		msg, _ := cfg.Message(cfg.Kind, name)
		el.SetBorderColor(cfg.AlertColor)
		for _, box := range v.query(cfg.AlertBox) {
			box.AppendHTML(msg + lineBreak)
		}
		res.Invalid = append(res.Invalid, el)
		res.Failures.Add(validator.ValidationError{
			Field:   name,
			Message: msg,
			Code:    check.Error.Code,
		})

		v.log.Debug("field failed validation",
			logger.Kind(cfg.Kind.String()),
			logger.Field(name),
		)
	}

	v.log.Debug("validation finished",
		logger.Kind(cfg.Kind.String()),
		logger.Count(len(targets)),
		logger.Valid(res.Valid),
	)
	return res
}

func (v *Validator) reset(cfg Config, targets []Element) {
	fields := 0
	for _, target := range targets {
		for _, el := range target.Find(ResettableFields) {
			el.SetBorderColor(cfg.BorderColor)
			fields++
		}
	}
	for _, box := range v.query(cfg.AlertBox) {
		box.Clear()
	}

	v.log.Debug("form reset", logger.Count(fields), logger.Selector(cfg.AlertBox))
}

func (v *Validator) query(selector string) []Element {
	if v.doc == nil {
		return nil
	}
	return v.doc.Query(selector)
}

// Validate runs a single call with the built-in defaults. It is shorthand
// for New(doc).Validate(targets, opts...).
func Validate(doc Document, targets []Element, opts ...Option) (valid, ok bool) {
	return New(doc).Validate(targets, opts...)
}
