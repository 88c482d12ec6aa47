package domain

import (
	"sort"
	"strings"
)

// PathVar is the name of the executable search path variable.
const PathVar = "PATH"

// Env is an explicitly composed process environment.
//
// It starts from a snapshot of the parent environment and is only changed through
// its methods, so every command the provisioner launches sees exactly the variables
// the pipeline decided on. On Windows hosts keys compare case-insensitively and list
// values are separated by ';'.
type Env struct {
	vars     map[string]string
	names    map[string]string
	foldCase bool
	sep      string
}

// NewEnv builds an Env from "KEY=VALUE" entries for the given host.
func NewEnv(environ []string, host HostProfile) *Env {
	e := &Env{
		vars:     make(map[string]string, len(environ)),
		names:    make(map[string]string, len(environ)),
		foldCase: host.IsWindows(),
		sep:      ":",
	}
	if host.IsWindows() {
		e.sep = ";"
	}
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		e.Set(k, v)
	}
	return e
}

func (e *Env) key(name string) string {
	if e.foldCase {
		return strings.ToUpper(name)
	}
	return name
}

// ListSeparator returns the separator used for list-valued variables.
func (e *Env) ListSeparator() string {
	return e.sep
}

// Get returns the value of name.
func (e *Env) Get(name string) (string, bool) {
	v, ok := e.vars[e.key(name)]
	return v, ok
}

// Set assigns value to name. The first spelling of a key is kept.
func (e *Env) Set(name, value string) {
	k := e.key(name)
	if _, ok := e.names[k]; !ok {
		e.names[k] = name
	}
	e.vars[k] = value
}

// PrependPath puts dir at the front of the list variable name unless it is already there.
func (e *Env) PrependPath(name, dir string) {
	current, _ := e.Get(name)
	for _, seg := range e.Split(current) {
		if e.sameSegment(seg, dir) {
			return
		}
	}
	if current == "" {
		e.Set(name, dir)
		return
	}
	e.Set(name, dir+e.sep+current)
}

// Split breaks a list value into its non-empty segments.
func (e *Env) Split(value string) []string {
	var out []string
	for _, seg := range strings.Split(value, e.sep) {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// PathDirs returns the segments of PATH.
func (e *Env) PathDirs() []string {
	v, _ := e.Get(PathVar)
	return e.Split(v)
}

func (e *Env) sameSegment(a, b string) bool {
	a = strings.TrimRight(a, `/\`)
	b = strings.TrimRight(b, `/\`)
	if e.foldCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Apply folds a mutation into the composed environment regardless of its scope.
func (e *Env) Apply(m EnvMutation) {
	if m.PathLike {
		e.PrependPath(m.Name, m.Value)
		return
	}
	e.Set(m.Name, m.Value)
}

// Clone returns an independent copy.
func (e *Env) Clone() *Env {
	c := &Env{
		vars:     make(map[string]string, len(e.vars)),
		names:    make(map[string]string, len(e.names)),
		foldCase: e.foldCase,
		sep:      e.sep,
	}
	for k, v := range e.vars {
		c.vars[k] = v
	}
	for k, v := range e.names {
		c.names[k] = v
	}
	return c
}

// Slice renders the environment as sorted "KEY=VALUE" entries.
func (e *Env) Slice() []string {
	out := make([]string, 0, len(e.vars))
	for k, v := range e.vars {
		out = append(out, e.names[k]+"="+v)
	}
	sort.Strings(out)
	return out
}
