package form

import "github.com/dmitrymomot/formvalidate/pkg/sanitizer"

// Placeholders substituted with the failing field's name in each message.
const (
	PlaceholderRequired = "{isreq}"
	PlaceholderEmail    = "{ismail}"
	PlaceholderNumeric  = "{isnum}"
	PlaceholderDate     = "{isdate}"
)

// Config is the effective configuration of one validation call.
// Values are used as given; colors and messages are not checked.
type Config struct {
	Kind            Kind   `yaml:"type" env:"KIND" envDefault:"isreq"`
	AlertBox        string `yaml:"alert_box" env:"ALERT_BOX" envDefault:"#alert"`
	BorderColor     string `yaml:"border_color" env:"BORDER_COLOR" envDefault:"#999"`
	AlertColor      string `yaml:"alert_color" env:"ALERT_COLOR" envDefault:"#f00"`
	RequiredMessage string `yaml:"required_message" env:"REQUIRED_MESSAGE" envDefault:"Field <strong>{isreq}</strong> is required."`
	EmailMessage    string `yaml:"email_message" env:"EMAIL_MESSAGE" envDefault:"Field <strong>{ismail}</strong> needs to be an e-mail valid format."`
	NumberMessage   string `yaml:"number_message" env:"NUMBER_MESSAGE" envDefault:"Field <strong>{isnum}</strong> needs to be a number."`
	DateMessage     string `yaml:"date_message" env:"DATE_MESSAGE" envDefault:"Field <strong>{isdate}</strong> needs to be a date valid format."`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Kind:            KindRequired,
		AlertBox:        "#alert",
		BorderColor:     "#999",
		AlertColor:      "#f00",
		RequiredMessage: "Field <strong>" + PlaceholderRequired + "</strong> is required.",
		EmailMessage:    "Field <strong>" + PlaceholderEmail + "</strong> needs to be an e-mail valid format.",
		NumberMessage:   "Field <strong>" + PlaceholderNumeric + "</strong> needs to be a number.",
		DateMessage:     "Field <strong>" + PlaceholderDate + "</strong> needs to be a date valid format.",
	}
}

// Message renders the failure message of kind for the named field. Only the
// first placeholder occurrence is replaced. ok is false for kinds that have
// no message (reset and unknown kinds).
func (c Config) Message(kind Kind, name string) (msg string, ok bool) {
	r, ok := rules[kind]
	if !ok {
		return "", false
	}
	return sanitizer.ReplaceFirst(r.template(c), r.placeholder, name), true
}

// Overrides is a partial Config. A nil field keeps the default; a non-nil
// field replaces it, even when it points to an empty string.
type Overrides struct {
	Kind            *Kind   `yaml:"type,omitempty"`
	AlertBox        *string `yaml:"alert_box,omitempty"`
	BorderColor     *string `yaml:"border_color,omitempty"`
	AlertColor      *string `yaml:"alert_color,omitempty"`
	RequiredMessage *string `yaml:"required_message,omitempty"`
	EmailMessage    *string `yaml:"email_message,omitempty"`
	NumberMessage   *string `yaml:"number_message,omitempty"`
	DateMessage     *string `yaml:"date_message,omitempty"`
}

// Resolve shallow-merges overrides onto defaults. It never fails.
func Resolve(defaults Config, overrides Overrides) Config {
	cfg := defaults
	if overrides.Kind != nil {
		cfg.Kind = *overrides.Kind
	}
	if overrides.AlertBox != nil {
		cfg.AlertBox = *overrides.AlertBox
	}
	if overrides.BorderColor != nil {
		cfg.BorderColor = *overrides.BorderColor
	}
	if overrides.AlertColor != nil {
		cfg.AlertColor = *overrides.AlertColor
	}
	if overrides.RequiredMessage != nil {
		cfg.RequiredMessage = *overrides.RequiredMessage
	}
	if overrides.EmailMessage != nil {
		cfg.EmailMessage = *overrides.EmailMessage
	}
	if overrides.NumberMessage != nil {
		cfg.NumberMessage = *overrides.NumberMessage
	}
	if overrides.DateMessage != nil {
		cfg.DateMessage = *overrides.DateMessage
	}
	return cfg
}

// Option sets one field of the per-call Overrides.
type Option func(*Overrides)

func WithKind(k Kind) Option {
	return func(o *Overrides) { o.Kind = &k }
}

// WithAlertBox sets the selector of the element receiving messages.
func WithAlertBox(selector string) Option {
	return func(o *Overrides) { o.AlertBox = &selector }
}

// WithBorderColor sets the border color restored by a reset.
func WithBorderColor(color string) Option {
	return func(o *Overrides) { o.BorderColor = &color }
}

// WithAlertColor sets the border color of failing fields.
func WithAlertColor(color string) Option {
	return func(o *Overrides) { o.AlertColor = &color }
}

func WithRequiredMessage(tmpl string) Option {
	return func(o *Overrides) { o.RequiredMessage = &tmpl }
}

func WithEmailMessage(tmpl string) Option {
	return func(o *Overrides) { o.EmailMessage = &tmpl }
}

func WithNumberMessage(tmpl string) Option {
	return func(o *Overrides) { o.NumberMessage = &tmpl }
}

func WithDateMessage(tmpl string) Option {
	return func(o *Overrides) { o.DateMessage = &tmpl }
}

// WithOverrides copies every non-nil field of src.
func WithOverrides(src Overrides) Option {
	return func(o *Overrides) {
		if src.Kind != nil {
			o.Kind = src.Kind
		}
		if src.AlertBox != nil {
			o.AlertBox = src.AlertBox
		}
		if src.BorderColor != nil {
			o.BorderColor = src.BorderColor
		}
		if src.AlertColor != nil {
			o.AlertColor = src.AlertColor
		}
		if src.RequiredMessage != nil {
			o.RequiredMessage = src.RequiredMessage
		}
		if src.EmailMessage != nil {
			o.EmailMessage = src.EmailMessage
		}
		if src.NumberMessage != nil {
			o.NumberMessage = src.NumberMessage
		}
		if src.DateMessage != nil {
			o.DateMessage = src.DateMessage
		}
	}
}

func buildOverrides(opts []Option) Overrides {
	var o Overrides
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
