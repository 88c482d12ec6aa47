package provision

import (
	"context"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/zerr"
)

// configure applies every mutation to the composed environment and persists the
// durable ones.
func (r *runner) configure(ctx context.Context, mutations []domain.EnvMutation) error {
	for _, m := range mutations {
		r.env.Apply(m)
		if m.Scope != domain.ScopeDurable {
			continue
		}
		if err := r.EnvStore.Persist(ctx, m); err != nil {
			err = zerr.Wrap(err, "failed to persist environment variable")
			return zerr.With(err, "name", m.Name)
		}
		r.Logger.Debug("persisted " + m.Name)
	}
	return nil
}

func durable(vars []domain.EnvVar) []domain.EnvMutation {
	out := make([]domain.EnvMutation, 0, len(vars))
	for _, v := range vars {
		out = append(out, domain.EnvMutation{Name: v.Name, Value: v.Value, Scope: domain.ScopeDurable})
	}
	return out
}
