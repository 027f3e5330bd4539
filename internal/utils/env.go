package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindProjectRoot walks upward from the working directory until it reaches
// the directory containing go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// LoadEnv loads the project root's .env file. Packaged builds run without a
// go.mod nearby, so the working directory serves as the fallback location.
func LoadEnv() error {
	if root, err := FindProjectRoot(); err == nil {
		return godotenv.Load(filepath.Join(root, ".env"))
	}
	return godotenv.Load()
}
