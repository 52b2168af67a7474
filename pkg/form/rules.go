package form

import "github.com/dmitrymomot/formvalidate/pkg/validator"

// rule ties a kind to its value check and failure message.
type rule struct {
	placeholder string
	template    func(Config) string
	check       func(field, value string) validator.Rule
}

var rules = map[Kind]rule{
	KindRequired: {
		placeholder: PlaceholderRequired,
		template:    func(c Config) string { return c.RequiredMessage },
		check:       validator.Required,
	},
	KindEmail: {
		placeholder: PlaceholderEmail,
		template:    func(c Config) string { return c.EmailMessage },
		check:       validator.LooseEmail,
	},
	KindNumeric: {
		placeholder: PlaceholderNumeric,
		template:    func(c Config) string { return c.NumberMessage },
		check:       validator.LooseNumber,
	},
	KindDate: {
		placeholder: PlaceholderDate,
		template:    func(c Config) string { return c.DateMessage },
		check:       validator.DateShape,
	},
}
