package domain

// DefaultVersionArgs is used when a ToolSpec does not name its own probe arguments.
var DefaultVersionArgs = []string{"--version"}

// ToolSpec describes how to recognise a working installation of a tool.
type ToolSpec struct {
	// Name is the executable name without extension.
	Name string
	// VersionArgs are passed to the tool to make it identify itself.
	VersionArgs []string
	// Markers must all occur, case-insensitively, in the combined output.
	Markers []string
	// MinVersion, when set, is the lowest acceptable dotted version found in the output.
	MinVersion string
	// PresenceOnly skips running the tool; finding the executable is enough.
	PresenceOnly bool
}

// Args returns the probe arguments, falling back to DefaultVersionArgs.
func (s ToolSpec) Args() []string {
	if len(s.VersionArgs) == 0 {
		return DefaultVersionArgs
	}
	return s.VersionArgs
}

// ToolPresence is the result of one detection. It is never cached across steps.
type ToolPresence struct {
	Name       string
	Found      bool
	SearchDirs []string
	Path       string
	Version    string
}
