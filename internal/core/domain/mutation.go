package domain

// EnvScope says where an environment mutation takes effect.
type EnvScope int

const (
	// ScopeProcess applies only to the composed environment of the current run.
	ScopeProcess EnvScope = iota
	// ScopeDurable is written to the registry or the shell profile.
	ScopeDurable
)

func (s EnvScope) String() string {
	if s == ScopeDurable {
		return "durable"
	}
	return "process"
}

// EnvMutation is a single change to an environment variable.
// When PathLike is set, Value is a directory that is added to a list-valued variable
// (such as PATH) instead of replacing it.
type EnvMutation struct {
	Name     string
	Value    string
	Scope    EnvScope
	PathLike bool
}

// EnvVar is a plain name/value pair.
type EnvVar struct {
	Name  string
	Value string
}
