package domain

import "time"

// Receipt records an installed support-library archive.
type Receipt struct {
	Triple      TargetTriple `json:"triple,omitzero"`
	ArchiveURL  string       `json:"archive_url,omitzero"`
	Digest      string       `json:"digest,omitzero"`
	InstalledAt time.Time    `json:"installed_at,omitzero"`
}
