package pipeline

import (
	"context"
	"errors"
	"testing"
)

func step(name string, critical bool, status Status) Step {
	return Step{
		Name:     name,
		Critical: critical,
		Run: func(context.Context) Outcome {
			return Outcome{Status: status}
		},
	}
}

func TestRunExecutesInOrder(t *testing.T) {
	var order []string
	steps := []Step{
		{Name: "first", Run: func(context.Context) Outcome {
			order = append(order, "first")
			return Outcome{Status: StatusDone}
		}},
		{Name: "second", Run: func(context.Context) Outcome {
			order = append(order, "second")
			return Outcome{Status: StatusDone}
		}},
	}

	outcomes := Run(context.Background(), steps)
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected execution order %v", order)
	}
	if outcomes[0].Step != "first" || outcomes[1].Step != "second" {
		t.Fatalf("step names not attached: %+v", outcomes)
	}
	if Failed(outcomes) {
		t.Fatalf("expected no failures")
	}
}

func TestRunHaltsAfterCriticalFailure(t *testing.T) {
	executed := false
	steps := []Step{
		step("setup", true, StatusFailed),
		{Name: "later", Run: func(context.Context) Outcome {
			executed = true
			return Outcome{Status: StatusDone}
		}},
	}

	outcomes := Run(context.Background(), steps)
	if executed {
		t.Fatalf("step after critical failure must not run")
	}
	if outcomes[1].Status != StatusSkipped {
		t.Fatalf("expected skipped, got %s", outcomes[1].Status)
	}
	if !Failed(outcomes) {
		t.Fatalf("expected Failed to report the failure")
	}
}

func TestRunContinuesAfterNonCriticalFailure(t *testing.T) {
	steps := []Step{
		step("optional", false, StatusFailed),
		step("next", false, StatusDone),
	}

	outcomes := Run(context.Background(), steps)
	if outcomes[1].Status != StatusDone {
		t.Fatalf("expected later step to run, got %s", outcomes[1].Status)
	}
}

func TestOutcomeKeepsError(t *testing.T) {
	wantErr := errors.New("boom")
	steps := []Step{
		{Name: "broken", Run: func(context.Context) Outcome {
			return Outcome{Status: StatusFailed, Err: wantErr}
		}},
	}

	outcomes := Run(context.Background(), steps)
	if !errors.Is(outcomes[0].Err, wantErr) {
		t.Fatalf("expected error to be preserved, got %v", outcomes[0].Err)
	}
}
