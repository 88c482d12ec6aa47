package provision

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxOutputMetadata bounds the command output attached to errors.
const maxOutputMetadata = 4096

// invoke runs cmd under policy in the composed environment.
//
// A tolerated exit is logged and reported as OutcomeTolerated with a nil error. A
// failure is retried up to policy.MaxRetries times and then returned as
// ErrCommandFailed. The policy delay is waited after every attempt.
func (r *runner) invoke(ctx context.Context, cmd domain.Command, policy domain.StepPolicy) (domain.Outcome, error) {
	if cmd.Env == nil {
		cmd.Env = r.env.Slice()
	}
	cmd.Capture = true

	var res domain.Result
	for attempt := 0; ; attempt++ {
		var err error
		res, err = r.Executor.Run(ctx, cmd)
		if err != nil {
			return domain.OutcomeFailure, zerr.With(zerr.Wrap(err, "failed to run external command"), "command", cmd.String())
		}

		outcome := policy.Classify(res.ExitCode)
		if outcome == domain.OutcomeTolerated {
			r.Logger.Info(fmt.Sprintf("%s exited with %d, tolerated", cmd.String(), res.ExitCode))
		}
		if err := r.sleep(ctx, policy.Delay); err != nil {
			return outcome, err
		}
		if outcome != domain.OutcomeFailure {
			return outcome, nil
		}
		if attempt >= policy.MaxRetries {
			break
		}
		r.Logger.Warn(fmt.Sprintf("%s exited with %d, retrying", cmd.String(), res.ExitCode))
	}

	return domain.OutcomeFailure, commandFailed(cmd, res)
}

// run is invoke under the strict policy.
func (r *runner) run(ctx context.Context, name string, args ...string) error {
	_, err := r.invoke(ctx, domain.Command{Name: name, Args: args}, domain.StrictPolicy())
	return err
}

func commandFailed(cmd domain.Command, res domain.Result) error {
	err := zerr.Wrap(domain.ErrCommandFailed, "external command exited with failure")
	err = zerr.With(err, "command", cmd.String())
	err = zerr.With(err, "exit_code", res.ExitCode)
	return zerr.With(err, "output", tail(res.Output, maxOutputMetadata))
}

// tail returns at most the last n bytes of s without splitting a rune.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	start := len(s) - n
	for start < len(s) && !utf8.RuneStart(s[start]) {
		start++
	}
	return s[start:]
}
