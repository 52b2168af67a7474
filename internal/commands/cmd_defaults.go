package commands

import (
	"context"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type DefaultsCmd struct {
	flags *Flags
}

// NewDefaultsCmd creates the defaults command.
func NewDefaultsCmd(flags *Flags) *DefaultsCmd {
	return &DefaultsCmd{flags: flags}
}

// Register adds the defaults command to the application.
func (cmd *DefaultsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "defaults",
		Usage: "Print the default validation configuration",
		Description: `Prints the configuration every plan step starts from, after
FORMVALIDATE_* environment variables are applied. The output uses the same
keys as plan steps.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *DefaultsCmd) run(_ context.Context, c *cli.Command) error {
	enc := yaml.NewEncoder(c.Root().Writer)
	enc.SetIndent(2)
	if err := enc.Encode(cmd.flags.Defaults); err != nil {
		return err
	}
	return enc.Close()
}
