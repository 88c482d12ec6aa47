package domain

// LibraryArtifact is the support-library archive for one target triple.
//
// Its lifecycle is: downloaded, extracted, directory-name normalized, archive deleted.
type LibraryArtifact struct {
	Triple       TargetTriple
	ArchiveURL   string
	ArchivePath  string
	ExtractedDir string
	Digest       string
	// Cached is set when an earlier run already installed the same archive.
	Cached bool
}
