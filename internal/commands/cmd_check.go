package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/formvalidate/internal/plan"
	"github.com/dmitrymomot/formvalidate/pkg/form"
	"github.com/dmitrymomot/formvalidate/pkg/htmldom"
	"github.com/dmitrymomot/formvalidate/pkg/logger"
	"github.com/dmitrymomot/formvalidate/pkg/termview"
)

const (
	formatText = "text"
	formatHTML = "html"
)

type CheckCmd struct {
	flags    *Flags
	planPath string
	format   string
	out      string
}

// NewCheckCmd creates the check command.
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application.
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Run a validation plan against an HTML document",
		UsageText: "formvalidate check --plan plan.yaml [--format text|html] [--out file] form.html",
		Description: `Runs every step of the plan in order and prints a report, or the
resulting document with --format html. Use "-" to read the document from stdin.

Exits with status 1 when any step finds an invalid field.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "plan",
				Aliases:     []string{"p"},
				Usage:       "path to the plan file",
				Required:    true,
				Destination: &cmd.planPath,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format (text, html)",
				Value:       formatText,
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "write output to file instead of stdout",
				Destination: &cmd.out,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one document, got %d", c.Args().Len())
	}
	if cmd.format != formatText && cmd.format != formatHTML {
		return fmt.Errorf("unknown format %q", cmd.format)
	}

	log := cmd.flags.Logger.With(logger.Component("check"))

	p, err := plan.LoadFile(ctx, cmd.planPath)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}

	docPath := c.Args().First()
	doc, err := cmd.readDocument(c, docPath)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	v := form.New(doc, form.WithDefaults(cmd.flags.Defaults), form.WithLogger(log))
	outcome, err := plan.NewRunner(doc, v, log).Run(ctx, p)
	if err != nil {
		return err
	}

	w := c.Root().Writer
	if cmd.out != "" {
		f, err := os.Create(cmd.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if cmd.format == formatHTML {
		err = doc.Render(w)
	} else {
		err = termview.New(w).Write(report(docPath, doc, v, outcome))
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !outcome.Valid {
		log.Debug("document is invalid", logger.Count(outcome.Failures()))
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *CheckCmd) readDocument(c *cli.Command, path string) (*htmldom.Document, error) {
	var r io.Reader = c.Root().Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return htmldom.Parse(r)
}

// report lists every field checked by a non-reset step once, in the order
// first checked, with the alert boxes the plan wrote to. A field is invalid
// when any step recorded it as failing.
func report(title string, doc *htmldom.Document, v *form.Validator, outcome plan.Outcome) termview.Report {
	rep := termview.Report{
		Title:      title,
		Valid:      outcome.Valid,
		AlertColor: v.Defaults().AlertColor,
	}

	seenFields := make(map[*html.Node]int)
	seenBoxes := make(map[string]bool)
	for _, step := range outcome.Steps {
		if !step.Result.Applied {
			continue
		}
		cfg := v.Resolve(form.WithOverrides(step.Step.Overrides))

		failed := make(map[*html.Node]bool, len(step.Result.Invalid))
		for _, t := range step.Result.Invalid {
			if el, ok := t.(*htmldom.Element); ok {
				failed[el.Node()] = true
			}
		}

		for _, t := range step.Targets {
			el, ok := t.(*htmldom.Element)
			if !ok {
				continue
			}
			f := termview.Field{
				Name:    el.Name(),
				Value:   el.Value(),
				Border:  el.BorderColor(),
				Invalid: failed[el.Node()],
			}
			if i, ok := seenFields[el.Node()]; ok {
				f.Invalid = f.Invalid || rep.Fields[i].Invalid
				rep.Fields[i] = f
				continue
			}
			seenFields[el.Node()] = len(rep.Fields)
			rep.Fields = append(rep.Fields, f)
		}

		if seenBoxes[cfg.AlertBox] {
			continue
		}
		seenBoxes[cfg.AlertBox] = true
		for _, box := range doc.Elements(cfg.AlertBox) {
			rep.Alert += box.HTML()
		}
	}

	return rep
}
