package model

// Configlet is a configuration block stored on the server.
type Configlet struct {
	Key    string
	Name   string
	Config string
	Type   string

	// Raw is the full server document, used for backups.
	Raw map[string]any
}

// BackupFile is a configlet exported to the local filesystem.
type BackupFile struct {
	Configlet string
	Path      string
	SizeBytes int64
}
