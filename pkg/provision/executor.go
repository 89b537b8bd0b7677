package provision

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/dotup-sh/dotup/pkg/logging"
)

// Result records the outcome of one executed operation
type Result struct {
	Operation Operation
	Err       error
	Skipped   bool
	Duration  time.Duration
}

// Executor applies a plan's operations sequentially
type Executor struct {
	dryRun bool
	logger zerolog.Logger
}

// NewExecutor returns an Executor. With dryRun set, operations are recorded
// as skipped and nothing is changed.
func NewExecutor(dryRun bool) *Executor {
	return &Executor{
		dryRun: dryRun,
		logger: logging.GetLogger("provision"),
	}
}

// Execute runs every operation in plan order and returns their results.
// A failing operation does not stop the remaining ones; callers inspect
// the results.
func (e *Executor) Execute(plan *Plan) []Result {
	ops := plan.Operations()
	results := make([]Result, 0, len(ops))

	for _, op := range ops {
		start := time.Now()

		e.logger.Debug().
			Str("entry", op.Entry()).
			Str("operation", op.Description()).
			Bool("dry_run", e.dryRun).
			Msg("Executing operation")

		if e.dryRun {
			results = append(results, Result{
				Operation: op,
				Skipped:   true,
				Duration:  time.Since(start),
			})
			continue
		}

		err := op.Execute()
		logging.LogDuration(start, op.Description())
		if err != nil {
			e.logger.Error().
				Err(err).
				Str("entry", op.Entry()).
				Msg("Operation failed")
		}
		results = append(results, Result{
			Operation: op,
			Err:       err,
			Duration:  time.Since(start),
		})
	}

	return results
}
