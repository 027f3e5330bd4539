package utils

import (
	"os"
	"path/filepath"
)

func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && info.IsDir()
}

// FindGitRepoRoot walks up from path looking for a .git directory. The second
// return value is false when no enclosing repository exists.
func FindGitRepoRoot(path string) (string, bool) {
	dir := path
	if info, err := os.Stat(dir); err != nil {
		return "", false
	} else if !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		gitPath := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitPath); err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
