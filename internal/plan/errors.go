package plan

import "errors"

var (
	ErrReadPlan      = errors.New("plan: failed to read plan")
	ErrDecodePlan    = errors.New("plan: failed to decode plan")
	ErrEmptyPlan     = errors.New("plan: plan has no steps")
	ErrInvalidStep   = errors.New("plan: step has no selector")
	ErrPlanCancelled = errors.New("plan: execution cancelled")
)
