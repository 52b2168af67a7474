package plan

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/formvalidate/pkg/form"
	"github.com/dmitrymomot/formvalidate/pkg/logger"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Step    Step
	Targets []form.Element
	// Skipped is set for steps whose kind is not recognized.
	Skipped bool
	Result  form.Result
}

// Outcome is the outcome of a whole plan.
type Outcome struct {
	Steps []StepResult
	// Valid is true when no step reported an invalid target.
	Valid bool
}

// Failures returns the number of failing targets across all steps.
func (o Outcome) Failures() int {
	n := 0
	for _, s := range o.Steps {
		n += len(s.Result.Failures)
	}
	return n
}

// Runner executes plans against one document.
type Runner struct {
	doc       form.Document
	validator *form.Validator
	log       *slog.Logger
}

// NewRunner creates a runner. The validator must have been created for doc.
func NewRunner(doc form.Document, v *form.Validator, log *slog.Logger) *Runner {
	if log == nil {
		log = logger.Noop()
	}
	return &Runner{doc: doc, validator: v, log: log}
}

// Run executes the steps of p in order. Steps with an unrecognized kind are
// logged and skipped. Kind aliases such as "email" are accepted.
func (r *Runner) Run(ctx context.Context, p *Plan) (Outcome, error) {
	out := Outcome{Valid: true, Steps: make([]StepResult, 0, len(p.Steps))}

	for i, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			return out, errors.Join(ErrPlanCancelled, err)
		}

		log := r.log.With(slog.Int("step", i+1), logger.Selector(step.Select))

		if step.Kind != nil {
			kind, err := form.ParseKind(step.Kind.String())
			if err != nil {
				log.Warn("skipping step", logger.Error(err))
				out.Steps = append(out.Steps, StepResult{Step: step, Skipped: true})
				continue
			}
			step.Kind = &kind
		}

		targets := r.doc.Query(step.Select)
		if len(targets) == 0 {
			log.Warn("selector matched no elements")
		}

		res := r.validator.Run(targets, form.WithOverrides(step.Overrides))
		if res.Applied && !res.Valid {
			out.Valid = false
		}

		log.Info("step finished",
			logger.Kind(res.Kind.String()),
			logger.Count(len(targets)),
			slog.Bool("applied", res.Applied),
			logger.Valid(res.Valid),
		)

		out.Steps = append(out.Steps, StepResult{
			Step:    step,
			Targets: targets,
			Result:  res,
		})
	}

	return out, nil
}
