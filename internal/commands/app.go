package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formvalidate/pkg/config"
	"github.com/dmitrymomot/formvalidate/pkg/form"
	"github.com/dmitrymomot/formvalidate/pkg/logger"
)

// NewApp builds the root command with all subcommands registered.
func NewApp(flags *Flags, version string) *cli.Command {
	app := &cli.Command{
		Name:      "formvalidate",
		Usage:     "Validate HTML forms from the command line",
		UsageText: "formvalidate [global options] command [command options]",
		Description: `formvalidate runs form validation plans against HTML documents.

Failing fields get the alert border color and messages are appended to the
alert box, exactly as they would in a browser. Defaults can be changed with
FORMVALIDATE_* environment variables, e.g. FORMVALIDATE_ALERT_COLOR.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars(EnvPrefix + "LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "log format (text, json)",
				Sources:     cli.EnvVars(EnvPrefix + "LOG_FORMAT"),
				Value:       string(logger.FormatText),
				Destination: &flags.LogFormat,
			},
			&cli.StringSliceFlag{
				Name:        "env-file",
				Usage:       "load environment variables from a .env file (repeatable)",
				Destination: &flags.EnvFiles,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, setup(flags, c)
		},
	}

	app = NewCheckCmd(flags).Register(app)
	app = NewDefaultsCmd(flags).Register(app)

	return app
}

func setup(flags *Flags, c *cli.Command) error {
	level, err := logger.ParseLevel(flags.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	format := logger.Format(flags.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return fmt.Errorf("unknown log format %q", flags.LogFormat)
	}

	flags.Logger = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(c.Root().ErrWriter),
	)

	if err := config.LoadEnv(flags.EnvFiles...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}

	var defaults form.Config
	if err := config.Load(&defaults, config.WithPrefix(EnvPrefix)); err != nil {
		return fmt.Errorf("load defaults: %w", err)
	}
	flags.Defaults = defaults

	return nil
}
