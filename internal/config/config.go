// Package config resolves where the goal store lives.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// WorkspaceDir is the dot-directory holding the goal store in the working tree.
	WorkspaceDir = ".learning01"
	// GoalsFile is the goal store file name.
	GoalsFile = "goals.json"
	// EnvDB overrides the store path when --db is not given.
	EnvDB = "LEARNING01_DB"
)

// Source records which setting produced the store path.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceGlobal  Source = "global"
	SourceDefault Source = "default"
)

// Config is the resolved runtime configuration passed to the store and command layer.
type Config struct {
	DBPath string `json:"db_path"`
	Source Source `json:"source"`
}

// DefaultDBPath returns the default goal store path relative to the working directory.
func DefaultDBPath() string {
	return filepath.Join(WorkspaceDir, GoalsFile)
}

// Resolve picks the store path: --db flag, then $LEARNING01_DB, then db_path
// in the global config, then the default.
func Resolve(flagDB string) (*Config, error) {
	if flagDB != "" {
		return &Config{DBPath: ExpandPath(flagDB), Source: SourceFlag}, nil
	}

	if env := os.Getenv(EnvDB); env != "" {
		return &Config{DBPath: ExpandPath(env), Source: SourceEnv}, nil
	}

	global, err := LoadGlobalConfig()
	if err != nil {
		return nil, err
	}
	if global.DBPath != "" {
		return &Config{DBPath: global.DBPath, Source: SourceGlobal}, nil
	}

	return &Config{DBPath: DefaultDBPath(), Source: SourceDefault}, nil
}

// ExpandPath expands a leading ~ or ~/ to the user's home directory.
// Other paths, including ~user forms, are returned unchanged.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
