package commands

import (
	"log/slog"

	"github.com/dmitrymomot/formvalidate/pkg/form"
)

// EnvPrefix prefixes every environment variable read by the command.
const EnvPrefix = "FORMVALIDATE_"

type Flags struct {
	LogLevel  string
	LogFormat string
	EnvFiles  []string

	// Defaults and Logger are set in the Before hook and available to all
	// commands.
	Defaults form.Config
	Logger   *slog.Logger
}
