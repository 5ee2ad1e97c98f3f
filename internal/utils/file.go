package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirNotExists checks if a directory does not exist.
func DirNotExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	return err != nil || !info.IsDir()
}

// FileExists checks if a file exists at the given path.
func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// CreateDir creates a directory if it doesn't exist.
func CreateDir(path, name string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create %s dir: %w", name, err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories first.
func WriteFile(path string, data []byte) error {
	if err := CreateDir(filepath.Dir(path), "parent"); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
