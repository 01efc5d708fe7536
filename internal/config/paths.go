// ABOUTME: Standard filesystem paths for collapsetext configuration
// ABOUTME: Resolves ~/.collapsetext/ for global and .collapsetext/ for project-local files

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".collapsetext"
	projectDirName = ".collapsetext"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.collapsetext/).
func GlobalDir() string {
	if dir := os.Getenv("COLLAPSETEXT_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}
