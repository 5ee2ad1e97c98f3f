// Package scm builds source-control metadata for a descriptor from a local git repository.
package scm

import (
	"context"
	"errors"

	pgerrors "github.com/rahulagarwal0605/pomgen/internal/errors"
	"github.com/rahulagarwal0605/pomgen/internal/git"
	"github.com/rahulagarwal0605/pomgen/internal/logger"
)

// connectionPrefix marks a git connection string in a descriptor.
const connectionPrefix = "scm:git:"

// Record is the source-control metadata attached to a descriptor.
// Connection and DeveloperConnection are only set for GitHub remotes.
type Record struct {
	URL                 string
	Tag                 string
	Connection          string
	DeveloperConnection string
}

// Make reads origin and HEAD from gitDir and builds a Record.
// It reports false when there is no repository, no origin remote, or the
// metadata cannot be read; projects without git still get a descriptor.
func Make(ctx context.Context, gitDir string) (Record, bool) {
	return fromRepository(ctx, git.NewRepository(gitDir))
}

// ForRoot builds a Record from the repository at root, following a .git
// pointer file when the working tree is a linked worktree or submodule.
func ForRoot(ctx context.Context, root string) (Record, bool) {
	repo, err := git.Open(ctx, root)
	if err != nil {
		logSkip(ctx, root, err)
		return Record{}, false
	}
	return fromRepository(ctx, repo)
}

func fromRepository(ctx context.Context, repo *git.Repository) (Record, bool) {
	log := logger.Log(ctx).With().Str("root", repo.Root()).Logger()

	origin, ok, err := repo.Origin(ctx)
	if err != nil {
		logSkip(ctx, repo.GitDir(), err)
		return Record{}, false
	}
	if !ok {
		log.Debug().Msg("No origin remote, skipping SCM metadata")
		return Record{}, false
	}

	head, err := repo.Head(ctx)
	if err != nil {
		logSkip(ctx, repo.GitDir(), err)
		return Record{}, false
	}

	rec := Record{Tag: head.String()}
	if urls, ok := git.GitHubURLsFor(origin); ok {
		rec.URL = urls.Browse
		rec.Connection = connectionPrefix + urls.PublicClone
		rec.DeveloperConnection = connectionPrefix + urls.DevClone
		log.Debug().Str("url", rec.URL).Str("head", head.Short()).Msg("Resolved GitHub SCM metadata")
		return rec, true
	}

	// Partial record: tag plus a generic browse URL when one can be derived.
	if web, ok := git.WebURL(origin); ok {
		rec.URL = web
	}
	log.Debug().Str("origin", origin).Str("url", rec.URL).Msg("Origin is not a GitHub remote, emitting partial SCM metadata")
	return rec, true
}

// logSkip records why SCM metadata was left out.
func logSkip(ctx context.Context, gitDir string, err error) {
	ev := logger.Log(ctx).Warn()
	if errors.Is(err, pgerrors.ErrNotFound) || errors.Is(err, pgerrors.ErrNotGitRepository) {
		ev = logger.Log(ctx).Debug()
	}
	ev.Err(err).Str("git_dir", gitDir).Msg("No git metadata, skipping SCM metadata")
}
