package provision

import (
	"context"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline runs provisioning steps strictly in order.
type Pipeline struct {
	steps     []Step
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewPipeline creates a Pipeline over steps.
func NewPipeline(steps []Step, telemetry ports.Telemetry, logger ports.Logger) *Pipeline {
	return &Pipeline{
		steps:     steps,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run executes the steps until one fails or the context is cancelled.
// The returned reports cover every step, including those that never started.
func (p *Pipeline) Run(ctx context.Context) ([]domain.StepReport, error) {
	reports := make([]domain.StepReport, len(p.steps))
	for i, step := range p.steps {
		reports[i] = domain.StepReport{Name: step.Name, Status: domain.StepStatusPending}
	}

	for i, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		reports[i].Status = domain.StepStatusRunning
		p.logger.Info("==> " + step.Name)
		stepCtx, vertex := p.telemetry.Record(ctx, step.Name)

		cached, err := step.Run(stepCtx)
		if err != nil {
			vertex.Complete(err)
			reports[i].Status = domain.StepStatusFailed
			return reports, zerr.With(zerr.Wrap(err, "provisioning step failed"), "step", step.Name)
		}

		if cached {
			vertex.Cached()
			reports[i].Status = domain.StepStatusCached
		} else {
			reports[i].Status = domain.StepStatusCompleted
		}
		vertex.Complete(nil)
	}
	return reports, nil
}
