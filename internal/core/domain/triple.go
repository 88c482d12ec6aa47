package domain

// TargetTriple is a Rust/LLVM target triple.
type TargetTriple string

const (
	// TripleWindowsGNU is the MinGW target used on Windows hosts.
	TripleWindowsGNU TargetTriple = "x86_64-pc-windows-gnu"
	// TripleLinuxGNU is the glibc target used on Linux hosts.
	TripleLinuxGNU TargetTriple = "x86_64-unknown-linux-gnu"
)

func (t TargetTriple) String() string {
	return string(t)
}
