package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/rahulagarwal0605/pomgen/cmd"
	"github.com/rahulagarwal0605/pomgen/internal/constants"
	"github.com/rahulagarwal0605/pomgen/internal/logger"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type mainCmd struct {
	cmd.GlobalOptions

	Version   versionFlag `name:"version" help:"Print version information"`
	Verbosity int         `short:"v" type:"counter" help:"Increase verbosity"`
	Dir       string      `short:"C" help:"Change directory before running"`

	Init cmd.InitCmd `cmd:"" help:"Create a starter project description"`
	Pom  cmd.PomCmd  `cmd:"" default:"withargs" help:"Generate pom.xml (and optionally pom.properties)"`
	Scm  cmd.ScmCmd  `cmd:"" help:"Show the source control metadata read from .git"`
	Deps cmd.DepsCmd `cmd:"" help:"List dependencies as Maven package URLs"`
}

type versionFlag bool

func (v versionFlag) BeforeApply(app *kong.Kong) error {
	app.Stdout.Write([]byte("pomgen " + version + " (" + commit + ") built on " + date + "\n"))
	os.Exit(0)
	return nil
}

func main() {
	log := logger.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logger.WithLogger(ctx, &log)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		log.Warn().Msg("Interrupted, finishing up...")
		cancel()
	}()

	var cli mainCmd
	parser := kong.Must(&cli,
		kong.Name("pomgen"),
		kong.Description("Generate a Maven pom.xml from a project description and local git metadata"),
		kong.UsageOnError(),
		kong.Vars{
			"defaultProjectFile": constants.ProjectFileName,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(&log, (*zerolog.Logger)(nil)),
	)

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	logger.SetLogLevel(cli.Verbosity)

	// Relative paths in flags are resolved after this, against the new directory.
	if cli.Dir != "" {
		if err := os.Chdir(cli.Dir); err != nil {
			log.Fatal().Err(err).Str("dir", cli.Dir).Msg("Failed to change directory")
		}
	}

	err = kctx.Run(&cli.GlobalOptions, &log, ctx)
	kctx.FatalIfErrorf(err)
}
