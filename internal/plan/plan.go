// Package plan loads validation plans and runs them against a document.
//
// A plan is a YAML list of steps. Each step selects target elements and
// carries the same keys as a form configuration override:
//
//	steps:
//	  - select: "#signup"
//	    type: reset
//	  - select: "#signup [name=email]"
//	    type: ismail
//	    alert_color: "#c00"
package plan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formvalidate/pkg/form"
)

// Step is one validation call.
type Step struct {
	// Select is the CSS selector of the target elements.
	Select         string `yaml:"select"`
	form.Overrides `yaml:",inline"`
}

// Plan is an ordered list of steps.
type Plan struct {
	Steps []Step `yaml:"steps"`
}

// Load decodes a plan from r. Unknown keys are rejected.
func Load(ctx context.Context, r io.Reader) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrReadPlan, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrReadPlan, err)
	}

	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPlan
		}
		return nil, errors.Join(ErrDecodePlan, err)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads and decodes the plan at path.
func LoadFile(ctx context.Context, path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadPlan, err)
	}
	defer f.Close()

	return Load(ctx, f)
}

func (p *Plan) validate() error {
	if len(p.Steps) == 0 {
		return ErrEmptyPlan
	}
	for i, s := range p.Steps {
		if s.Select == "" {
			return errors.Join(ErrInvalidStep, fmt.Errorf("step %d", i+1))
		}
	}
	return nil
}
