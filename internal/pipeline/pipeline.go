// Package pipeline runs the installer's sequential workflow with typed
// per-step outcomes, so the caller branches on data instead of nested
// conditionals.
package pipeline

import "context"

// Status classifies how a step ended.
type Status string

const (
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome is one step's result.
type Outcome struct {
	Step   string `json:"step"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
	Err    error  `json:"-"`
}

// Step is a named unit of installer work. Critical steps stop the pipeline
// when they fail; later steps depend on their filesystem side effects.
type Step struct {
	Name     string
	Critical bool
	Run      func(ctx context.Context) Outcome
}

// Run executes steps strictly in order. After a critical failure the
// remaining steps are reported as skipped rather than executed.
func Run(ctx context.Context, steps []Step) []Outcome {
	outcomes := make([]Outcome, 0, len(steps))
	halted := false
	for _, step := range steps {
		if halted {
			outcomes = append(outcomes, Outcome{
				Step:   step.Name,
				Status: StatusSkipped,
				Detail: "previous step failed",
			})
			continue
		}
		outcome := step.Run(ctx)
		outcome.Step = step.Name
		outcomes = append(outcomes, outcome)
		if outcome.Status == StatusFailed && step.Critical {
			halted = true
		}
	}
	return outcomes
}

// Failed reports whether any outcome failed.
func Failed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Status == StatusFailed {
			return true
		}
	}
	return false
}
