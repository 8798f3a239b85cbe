// Package config locates and persists the user's settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DirName      = "ytt"
	FileName     = "config.json"
	CacheDirName = "cache"
)

// Paths is the on-disk layout: the config file and the cache directory both live under ConfigDir.
type Paths struct {
	ConfigDir  string
	ConfigFile string
	CacheDir   string
}

// NewPaths returns the layout rooted at dir.
func NewPaths(dir string) Paths {
	return Paths{
		ConfigDir:  dir,
		ConfigFile: filepath.Join(dir, FileName),
		CacheDir:   filepath.Join(dir, CacheDirName),
	}
}

// DefaultPaths returns the layout rooted at the platform's user config directory.
func DefaultPaths() (Paths, error) {
	if dir, err := os.UserConfigDir(); err != nil {
		return Paths{}, fmt.Errorf("failed to find user config directory: %w", err)
	} else {
		return NewPaths(filepath.Join(dir, DirName)), nil
	}
}
