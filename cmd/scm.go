package cmd

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/rahulagarwal0605/pomgen/internal/constants"
	"github.com/rahulagarwal0605/pomgen/internal/scm"
)

// ScmCmd prints the source-control metadata that would go into the descriptor.
type ScmCmd struct{}

// Run executes the scm command.
func (c *ScmCmd) Run(globals *GlobalOptions, log *zerolog.Logger, ctx context.Context) error {
	p, err := LoadProject(ctx, globals)
	if err != nil {
		return err
	}

	rec, ok := scm.ForRoot(ctx, p.Root)
	if !ok {
		log.Debug().Str("root", p.Root).Msg("No SCM record")
	}
	c.printRecord(os.Stdout, rec, ok)
	return nil
}

func (c *ScmCmd) printRecord(w io.Writer, rec scm.Record, ok bool) {
	if !ok {
		writeLine(w, constants.MsgNoSCM)
		return
	}

	writeLine(w, "tag:                  %s", rec.Tag)
	if rec.URL != "" {
		writeLine(w, "url:                  %s", rec.URL)
	}
	if rec.Connection != "" {
		writeLine(w, "connection:           %s", rec.Connection)
	}
	if rec.DeveloperConnection != "" {
		writeLine(w, "developerConnection:  %s", rec.DeveloperConnection)
	}
}
