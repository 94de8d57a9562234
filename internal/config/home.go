package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Home returns the uigate home directory, resolving in priority order:
//
//  1. the UIGATE_HOME environment variable
//  2. an existing .uigate directory found walking up from the working
//     directory (so nested invocations share one policy)
//  3. .uigate under the working directory, created on demand
func Home() (string, error) {
	if home := os.Getenv("UIGATE_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create uigate home: %w", err)
		}
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for dir := cwd; ; {
		candidate := filepath.Join(dir, ".uigate")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	home := filepath.Join(cwd, ".uigate")
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create uigate home: %w", err)
	}
	return home, nil
}
