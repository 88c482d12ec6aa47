package ports

import "context"

// Prompter asks the user for consent.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Confirm shows message and reports whether the user agreed.
	Confirm(ctx context.Context, message string) (bool, error)
}
