// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/toysetup/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts cmd and waits for it to exit.
	//
	// A non-zero exit status is not an error: it is reported in Result.ExitCode so that
	// the caller's StepPolicy can judge it. The error is only set when the process
	// could not be started at all or the context was cancelled.
	Run(ctx context.Context, cmd domain.Command) (domain.Result, error)
}
