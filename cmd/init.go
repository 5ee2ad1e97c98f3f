package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rahulagarwal0605/pomgen/internal/project"
	"github.com/rahulagarwal0605/pomgen/internal/utils"
)

// InitCmd writes a starter project description.
type InitCmd struct {
	Force       bool   `help:"Overwrite an existing project description"`
	Name        string `help:"Project name (default: directory name)" short:"n"`
	Version     string `help:"Initial version" default:"0.1.0-SNAPSHOT"`
	Group       string `help:"Group id (default: name)" short:"g"`
	Description string `help:"Project description" short:"d"`
}

// Run executes the init command.
func (c *InitCmd) Run(globals *GlobalOptions, log *zerolog.Logger, ctx context.Context) error {
	path := globals.Project
	if utils.FileExists(path) && !c.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	absPath, err := utils.AbsPath(path)
	if err != nil {
		return fmt.Errorf("abs path: %w", err)
	}

	p := c.newProject(filepath.Base(filepath.Dir(absPath)))
	if err := p.Validate(); err != nil {
		return err
	}

	if err := utils.WriteYAML(absPath, p); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Info().Str("path", absPath).Str("name", p.Name).Msg("Created project description")
	fmt.Fprintf(os.Stdout, "Created %s\n", path)
	fmt.Fprintln(os.Stdout, "Next: pomgen pom")
	return nil
}

// newProject fills a project from the flags, naming it after dirName when unset.
func (c *InitCmd) newProject(dirName string) *project.Project {
	name := c.Name
	if name == "" {
		name = dirName
	}
	return &project.Project{
		Name:        name,
		Version:     c.Version,
		Group:       c.Group,
		Description: c.Description,
	}
}
