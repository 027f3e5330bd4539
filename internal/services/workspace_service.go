package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"github.com/yargevad/filepathx"

	"codesage/internal/utils"
)

// maxWorkspaceFiles caps directory listings sent to the frontend.
const maxWorkspaceFiles = 500

// workspaceIgnoreFile lists path prefixes (one per line, # for comments)
// excluded from workspace listings, for directories like vendor or build
// output.
const workspaceIgnoreFile = ".codesageignore"

// codeExtensions limits workspace listings to reviewable source files.
var codeExtensions = map[string]bool{
	".py": true, ".js": true, ".mjs": true, ".ts": true, ".tsx": true,
	".go": true, ".java": true, ".cs": true, ".rb": true, ".rs": true,
	".php": true, ".c": true, ".h": true, ".cc": true, ".cpp": true,
	".hpp": true, ".kt": true, ".swift": true, ".sh": true, ".sql": true,
}

// WorkspaceFile is one entry in a project directory listing.
type WorkspaceFile struct {
	Path     string `json:"path"`
	Relative string `json:"relative"`
	Size     int64  `json:"size"`
}

// WorkspaceService lets the user pick a project directory and browse its
// source files instead of uploading them one by one.
type WorkspaceService struct {
	ctx context.Context
}

func NewWorkspaceService() *WorkspaceService {
	return &WorkspaceService{}
}

func (s *WorkspaceService) Startup(ctx context.Context) {
	s.ctx = ctx
}

// SelectDirectory opens a native directory picker dialog.
func (s *WorkspaceService) SelectDirectory() (string, error) {
	dir, err := runtime.OpenDirectoryDialog(s.ctx, runtime.OpenDialogOptions{
		Title: "Select Project Directory",
	})
	if err != nil {
		return "", err
	}
	return dir, nil
}

// SelectCodeFile opens a native file picker dialog filtered to source files.
func (s *WorkspaceService) SelectCodeFile() (string, error) {
	return runtime.OpenFileDialog(s.ctx, runtime.OpenDialogOptions{
		Title: "Select Source File",
	})
}

// ListSourceFiles recursively globs dir for source files, skipping hidden
// directories and anything that is not a known code extension.
func (s *WorkspaceService) ListSourceFiles(dir string) ([]WorkspaceFile, error) {
	if !utils.DirectoryExists(dir) {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	matches, err := filepathx.Glob(filepath.Join(dir, "**", "*"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}

	ignored, err := utils.ReadNonEmptyLines(filepath.Join(dir, workspaceIgnoreFile))
	if err != nil {
		ignored = nil
	}

	var files []WorkspaceFile
	for _, match := range matches {
		rel, err := filepath.Rel(dir, match)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if hasHiddenComponent(rel) {
			continue
		}
		if isIgnored(rel, ignored) {
			continue
		}
		if !codeExtensions[strings.ToLower(filepath.Ext(match))] {
			continue
		}
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, WorkspaceFile{
			Path:     match,
			Relative: rel,
			Size:     info.Size(),
		})
		if len(files) >= maxWorkspaceFiles {
			break
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Relative < files[j].Relative })
	return files, nil
}

// isIgnored matches rel against ignore-file entries, each a path or path
// prefix relative to the workspace root.
func isIgnored(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
		if pattern == "" {
			continue
		}
		if rel == pattern || strings.HasPrefix(rel, pattern+"/") {
			return true
		}
	}
	return false
}

func hasHiddenComponent(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}
