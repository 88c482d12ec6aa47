package domain

import (
	"slices"
	"time"
)

// Outcome is the classification of a finished external command.
type Outcome int

const (
	// OutcomeSuccess means the command exited with status zero.
	OutcomeSuccess Outcome = iota
	// OutcomeTolerated means the command failed in a way its policy expects.
	OutcomeTolerated
	// OutcomeFailure means the command failed and the step must abort.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeTolerated:
		return "tolerated"
	default:
		return "failure"
	}
}

// StepPolicy declares how the outcome of a command is judged and what happens around it.
type StepPolicy struct {
	// ToleratedExitCodes are non-zero exit codes that count as OutcomeTolerated.
	ToleratedExitCodes []int
	// TolerateAnyExit turns every non-zero exit into OutcomeTolerated.
	TolerateAnyExit bool
	// MaxRetries is the number of extra attempts made after an OutcomeFailure.
	MaxRetries int
	// Delay is waited after the command finishes, whatever its outcome.
	Delay time.Duration
}

// StrictPolicy accepts only a zero exit code.
func StrictPolicy() StepPolicy {
	return StepPolicy{}
}

// Classify maps an exit code onto an Outcome.
func (p StepPolicy) Classify(exitCode int) Outcome {
	if exitCode == 0 {
		return OutcomeSuccess
	}
	if p.TolerateAnyExit || slices.Contains(p.ToleratedExitCodes, exitCode) {
		return OutcomeTolerated
	}
	return OutcomeFailure
}
