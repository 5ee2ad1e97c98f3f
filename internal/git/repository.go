package git

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rahulagarwal0605/pomgen/internal/constants"
	pgerrors "github.com/rahulagarwal0605/pomgen/internal/errors"
	"github.com/rahulagarwal0605/pomgen/internal/logger"
	"github.com/rahulagarwal0605/pomgen/internal/utils"
)

var (
	refLineRE    = regexp.MustCompile(`^ref:\s*(\S+)`)
	gitdirLineRE = regexp.MustCompile(`^gitdir:\s*(.+)$`)
)

// Repository represents a Git working tree and its metadata directory.
type Repository struct {
	gitDir  string // .git directory
	rootDir string // Working directory
}

// Open opens the repository rooted at path.
// A .git file holding a "gitdir: <path>" pointer (worktrees, submodules) is followed.
func Open(ctx context.Context, path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	gitDir := filepath.Join(absPath, constants.GitDirName)
	info, err := os.Stat(gitDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errNotGitRepository(path)
		}
		return nil, fmt.Errorf("stat %s: %w", gitDir, err)
	}

	if !info.IsDir() {
		gitDir, err = readGitdirPointer(absPath, gitDir)
		if err != nil {
			return nil, err
		}
	}

	logger.Log(ctx).Debug().Str("root", absPath).Str("git_dir", gitDir).Msg("Opened git repository")

	return &Repository{
		gitDir:  gitDir,
		rootDir: absPath,
	}, nil
}

// NewRepository wraps an already located .git directory.
// The working tree is taken to be its parent.
func NewRepository(gitDir string) *Repository {
	return &Repository{
		gitDir:  gitDir,
		rootDir: filepath.Dir(gitDir),
	}
}

// Root returns the repository root directory.
func (r *Repository) Root() string {
	return r.rootDir
}

// GitDir returns the .git directory.
func (r *Repository) GitDir() string {
	return r.gitDir
}

// Head resolves HEAD to a commit hash.
func (r *Repository) Head(ctx context.Context) (Hash, error) {
	return ReadHead(ctx, r.gitDir)
}

// Origin returns the URL of the origin remote.
func (r *Repository) Origin(ctx context.Context) (string, bool, error) {
	return ReadOrigin(ctx, r.gitDir)
}

// ReadHead resolves HEAD in gitDir to a commit hash.
// A symbolic HEAD ("ref: refs/heads/main") is followed one level, first through the
// loose ref file and then through packed-refs. Anything else is a detached HEAD.
func ReadHead(ctx context.Context, gitDir string) (Hash, error) {
	head, err := readTrimmed(filepath.Join(gitDir, constants.HeadFile))
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}

	m := refLineRE.FindStringSubmatch(head)
	if m == nil {
		logger.Log(ctx).Debug().Str("head", head).Msg("HEAD is detached")
		return Hash(head), nil
	}

	ref := m[1]
	refFile, ok := refPath(gitDir, ref)
	if !ok {
		return "", fmt.Errorf("%w: HEAD ref %q is outside %s", pgerrors.ErrNotFound, ref, gitDir)
	}
	logger.Log(ctx).Debug().Str("ref", ref).Msg("Resolving symbolic HEAD")

	sha, err := readTrimmed(refFile)
	if err == nil {
		return Hash(sha), nil
	}
	if !errors.Is(err, pgerrors.ErrNotFound) {
		return "", fmt.Errorf("read ref %s: %w", ref, err)
	}

	sha, ok, perr := lookupPackedRef(gitDir, ref)
	if perr != nil {
		return "", fmt.Errorf("read packed refs: %w", perr)
	}
	if !ok {
		return "", fmt.Errorf("read ref %s: %w", ref, err)
	}
	return Hash(sha), nil
}

// ReadOrigin returns the URL of the origin remote from gitDir/config.
func ReadOrigin(ctx context.Context, gitDir string) (string, bool, error) {
	return ReadRemoteURL(ctx, gitDir, constants.OriginRemote)
}

// ReadRemoteURL returns the url of the named remote from gitDir/config.
// A config without the section or key reports ok == false and no error.
func ReadRemoteURL(ctx context.Context, gitDir, remote string) (string, bool, error) {
	path := filepath.Join(gitDir, constants.ConfigFile)
	f, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("read config: %w", notFound(err))
	}
	defer f.Close()

	url, ok, err := scanRemoteURL(f, remote)
	if err != nil {
		return "", false, fmt.Errorf("scan %s: %w", path, err)
	}

	logger.Log(ctx).Debug().Str("remote", remote).Bool("found", ok).Str("url", url).Msg("Read remote from git config")
	return url, ok, nil
}

// refPath maps a symbolic ref onto its loose file. Only names under refs/
// that stay inside gitDir are accepted.
func refPath(gitDir, ref string) (string, bool) {
	if !strings.HasPrefix(ref, "refs/") {
		return "", false
	}
	path := filepath.Join(gitDir, filepath.FromSlash(ref))
	rel, err := filepath.Rel(gitDir, path)
	if err != nil || !strings.HasPrefix(rel, "refs"+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}

// lookupPackedRef finds ref in gitDir/packed-refs.
func lookupPackedRef(gitDir, ref string) (string, bool, error) {
	f, err := os.Open(filepath.Join(gitDir, constants.PackedRefsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		// Comments and peeled tag lines.
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "^") {
			continue
		}
		sha, name, ok := strings.Cut(line, " ")
		if ok && strings.TrimSpace(name) == ref {
			return sha, true, nil
		}
	}
	return "", false, sc.Err()
}

// readGitdirPointer resolves a .git file to the directory it points at.
func readGitdirPointer(root, gitFile string) (string, error) {
	content, err := readTrimmed(gitFile)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", gitFile, err)
	}
	m := gitdirLineRE.FindStringSubmatch(content)
	if m == nil {
		return "", errNotGitRepository(root)
	}
	dir := strings.TrimSpace(m[1])
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	if utils.DirNotExists(dir) {
		return "", errNotGitRepository(root)
	}
	return dir, nil
}

// readTrimmed reads a file and trims surrounding whitespace.
func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", notFound(err)
	}
	return utils.TrimOutputToString(data), nil
}

// notFound tags missing-file errors with ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", pgerrors.ErrNotFound, err)
	}
	return err
}

// errNotGitRepository returns an error for invalid git repository.
func errNotGitRepository(path string) error {
	return fmt.Errorf("%w: %s", pgerrors.ErrNotGitRepository, path)
}
