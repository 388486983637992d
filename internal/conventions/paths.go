// Package conventions has the local paths and names shared by the commands.
package conventions

import (
	"path/filepath"

	"k8s.io/client-go/util/homedir"
)

const (
	// DataDirName is the data directory name, relative to the user home.
	DataDirName = ".cvpctl"
	// HistoryDBFile is the task run history database file name.
	HistoryDBFile = "history.db"
	// ConfigFile is the optional configuration file name inside the data dir.
	ConfigFile = "config.yaml"
)

// DataDir returns the data directory of the current user.
func DataDir() string {
	return filepath.Join(homedir.HomeDir(), DataDirName)
}

// HistoryDBPath returns the default task run history database path.
func HistoryDBPath() string {
	return filepath.Join(DataDir(), HistoryDBFile)
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(DataDir(), ConfigFile)
}
