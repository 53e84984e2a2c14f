package pipeline

import (
	"errors"
	"fmt"
	"time"
)

// Stage is one step of the validation pipeline.
type Stage interface {
	Name() string
	Run(ctx *Context) error
}

// StageError reports which stage sank the run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ErrNoResources marks a run whose pipeline succeeded but produced nothing
// verifiable in the scope. Fatal, not a warning.
var ErrNoResources = errors.New("scope contains no resources")

// Stages assembles the stage list for the session's capability set.
// Disabled stages are omitted entirely.
func Stages(ctx *Context) []Stage {
	stages := []Stage{&ScopeStage{}}
	if ctx.Session.Capabilities.UsesProjectTool {
		stages = append(stages, &ToolStage{})
	}
	if ctx.Session.Capabilities.HasTemplate {
		stages = append(stages, &TemplateStage{})
	}
	return append(stages, &SmokeStage{})
}

// Run executes the stages sequentially, stopping at the first failure.
func Run(ctx *Context, stages []Stage) error {
	start := time.Now()
	ctx.Observer.Printf("Starting validation pipeline with %d stages (scope=%s, deployment=%s)...",
		len(stages), ctx.Session.ScopeID, ctx.Session.DeploymentID)

	for i, stage := range stages {
		stageStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", stage.Name(), i+1, len(stages))

		LogStageStart(ctx.Observer, name)

		if err := stage.Run(ctx); err != nil {
			LogStageFailed(ctx.Observer, name, err)
			return &StageError{Stage: stage.Name(), Err: err}
		}

		LogStageComplete(ctx.Observer, name, time.Since(stageStart))
	}

	ctx.Observer.Printf("Validation pipeline completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
