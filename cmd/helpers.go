package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rahulagarwal0605/pomgen/internal/logger"
	"github.com/rahulagarwal0605/pomgen/internal/pom"
	"github.com/rahulagarwal0605/pomgen/internal/project"
	"github.com/rahulagarwal0605/pomgen/internal/utils"
)

// LoadProject loads the project description named by the global options.
func LoadProject(ctx context.Context, globals *GlobalOptions) (*project.Project, error) {
	p, err := project.Load(globals.Project)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	logger.Log(ctx).Debug().
		Str("file", globals.Project).
		Str("name", p.Name).
		Str("version", p.Version).
		Str("root", p.Root).
		Msg("Loaded project description")
	return p, nil
}

// BuildModel loads the project and builds its descriptor model.
func BuildModel(ctx context.Context, globals *GlobalOptions) (*project.Project, *pom.Model, error) {
	p, err := LoadProject(ctx, globals)
	if err != nil {
		return nil, nil, err
	}

	m, err := pom.Build(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	return p, m, nil
}

// FilterDependencies returns the dependencies whose declared id or
// group/artifact path matches pattern.
func FilterDependencies(deps []pom.Dependency, pattern string) []pom.Dependency {
	var matched []pom.Dependency
	for _, d := range deps {
		if utils.MatchPattern(pattern, d.ID()) || utils.MatchPattern(pattern, d.GroupID+"/"+d.ArtifactID) {
			matched = append(matched, d)
		}
	}
	return matched
}

// writeLine prints to w, dropping the write error like fmt.Println does.
func writeLine(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}
