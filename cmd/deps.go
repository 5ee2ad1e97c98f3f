package cmd

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/rahulagarwal0605/pomgen/internal/constants"
	"github.com/rahulagarwal0605/pomgen/internal/pom"
)

// DepsCmd lists the project's dependencies as Maven package URLs.
type DepsCmd struct {
	Match string `help:"Only list dependencies whose group/artifact matches this glob" short:"m"`
}

// Run executes the deps command.
func (c *DepsCmd) Run(globals *GlobalOptions, log *zerolog.Logger, ctx context.Context) error {
	_, m, err := BuildModel(ctx, globals)
	if err != nil {
		return err
	}

	deps := FilterDependencies(m.Dependencies, c.Match)
	log.Debug().Int("total", len(m.Dependencies)).Int("matched", len(deps)).Str("match", c.Match).Msg("Filtered dependencies")

	c.printDependencies(os.Stdout, deps)
	return nil
}

func (c *DepsCmd) printDependencies(w io.Writer, deps []pom.Dependency) {
	if len(deps) == 0 {
		writeLine(w, constants.MsgNoDependencies)
		return
	}
	for _, d := range deps {
		writeLine(w, "%s", d.PURL())
	}
}
