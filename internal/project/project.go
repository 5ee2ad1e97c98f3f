package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	pgerrors "github.com/rahulagarwal0605/pomgen/internal/errors"
	"github.com/rahulagarwal0605/pomgen/internal/utils"
)

// Load reads and validates a project description file.
// Group defaults to Name and Root defaults to the file's directory.
func Load(path string) (*Project, error) {
	absPath, err := utils.AbsPath(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	p, err := utils.ReadYAMLFile[Project](absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", pgerrors.ErrInvalidProject, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if p.Group == "" {
		p.Group = p.Name
	}
	if p.Root == "" {
		p.Root = filepath.Dir(absPath)
	} else if !filepath.IsAbs(p.Root) {
		p.Root = filepath.Join(filepath.Dir(absPath), p.Root)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the required identity fields.
func (p *Project) Validate() error {
	if p.Name == "" {
		return errMissing("name")
	}
	if p.Version == "" {
		return errMissing("version")
	}
	for i, dep := range p.Dependencies {
		if dep.ID == "" {
			return errMissing(fmt.Sprintf("dependencies[%d].id", i))
		}
	}
	for i, repo := range p.Repositories {
		if repo.ID == "" || repo.URL == "" {
			return errMissing(fmt.Sprintf("repositories[%d]", i))
		}
	}
	return nil
}

// GroupID returns the group, falling back to the name.
func (p *Project) GroupID() string {
	if p.Group == "" {
		return p.Name
	}
	return p.Group
}

func errMissing(field string) error {
	return fmt.Errorf("%w: %w: %s", pgerrors.ErrInvalidProject, pgerrors.ErrMissingField, field)
}
