package services

import (
	"fmt"

	git "github.com/go-git/go-git/v5"

	"codesage/internal/models"
	"codesage/internal/utils"
)

// GitService surfaces lightweight repository metadata for loaded files.
type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// RepoInfoFor returns branch and short commit for the repository enclosing
// path, or (nil, nil) when the path is not inside a git repository.
func (g *GitService) RepoInfoFor(path string) (*models.RepoInfo, error) {
	root, ok := utils.FindGitRepoRoot(path)
	if !ok {
		return nil, nil
	}

	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("open repo at %s: %w", root, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("read HEAD: %w", err)
	}

	branch := head.Name().Short()
	commit := head.Hash().String()
	if len(commit) > 8 {
		commit = commit[:8]
	}

	return &models.RepoInfo{
		Root:   root,
		Branch: branch,
		Commit: commit,
	}, nil
}
