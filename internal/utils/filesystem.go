package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectRoot walks up from start looking for a directory that contains
// any of the marker files. It returns "" when the filesystem root or the
// parent of the home directory is reached first.
func FindProjectRoot(start string, markers ...string) (string, error) {
	currentDir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	stopDir := filepath.Dir(homeDir)

	for {
		if currentDir == stopDir {
			return "", nil
		}

		for _, marker := range markers {
			fileInfo, err := os.Stat(filepath.Join(currentDir, marker))
			if err == nil {
				if !fileInfo.IsDir() {
					return currentDir, nil
				}
			} else if !os.IsNotExist(err) {
				return "", fmt.Errorf("error checking for %s at %s: %w", marker, currentDir, err)
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
