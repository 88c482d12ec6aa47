package config

// Setupfile represents the structure of the toysetup.yaml configuration file.
// Every field is optional; unset fields keep their built-in defaults.
type Setupfile struct {
	LLVM    *LLVMDTO    `yaml:"llvm"`
	Rust    *RustDTO    `yaml:"rust"`
	Support *SupportDTO `yaml:"support"`
	Windows *WindowsDTO `yaml:"windows"`
	Linux   *LinuxDTO   `yaml:"linux"`
	Network *NetworkDTO `yaml:"network"`
}

// LLVMDTO represents the llvm section.
type LLVMDTO struct {
	Major     *int     `yaml:"major"`
	AptRepo   string   `yaml:"aptRepo"`
	AptKeyURL string   `yaml:"aptKeyURL"`
	Packages  []string `yaml:"packages"`
}

// RustDTO represents the rust section.
type RustDTO struct {
	Release      string           `yaml:"release"`
	InstallerURL *InstallerURLDTO `yaml:"installerURL"`
}

// InstallerURLDTO holds the per-platform rustup installer locations.
type InstallerURLDTO struct {
	Windows string `yaml:"windows"`
	Linux   string `yaml:"linux"`
}

// SupportDTO represents the support section.
type SupportDTO struct {
	URLTemplate  string              `yaml:"urlTemplate"`
	LibDir       string              `yaml:"libDir"`
	Misspellings map[string][]string `yaml:"misspellings"`
}

// WindowsDTO represents the windows section.
type WindowsDTO struct {
	MSYS2Root                string   `yaml:"msys2Root"`
	SettleDelay              string   `yaml:"settleDelay"`
	MinGWPackages            []string `yaml:"mingwPackages"`
	WingetToleratedExitCodes []int    `yaml:"wingetToleratedExitCodes"`
}

// LinuxDTO represents the linux section.
type LinuxDTO struct {
	Profile string      `yaml:"profile"`
	Exports []ExportDTO `yaml:"exports"`
}

// ExportDTO is one variable written to the shell profile.
type ExportDTO struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// NetworkDTO represents the network section.
type NetworkDTO struct {
	InsecureSkipVerify bool `yaml:"insecureSkipVerify"`
}
