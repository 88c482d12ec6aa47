package ports

import "go.trai.ch/toysetup/internal/core/domain"

// Reporter presents results to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Presence prints one line per detected tool.
	Presence(tools []domain.ToolPresence)
	// Summary prints the status of every pipeline step.
	Summary(steps []domain.StepReport)
	// Completion explains how to build and run the compiler. profile is the shell
	// profile the Linux exports were written to.
	Completion(host domain.HostProfile, profile string)
}
