package main

import (
	"os"

	"github.com/adnsv/awesome/export"
	cli "github.com/jawher/mow.cli"
	"github.com/rs/zerolog"
)

func main() {
	app := newApp(func(opts export.Options, verbose bool) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		if err := export.Export(log, opts); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		log.Info().Msg("mission accomplished")
	})
	app.Run(os.Args)
}

// newApp declares the command line and hands the parsed options to run.
func newApp(run func(opts export.Options, verbose bool)) *cli.Cli {
	configFN := ""
	rootDir := ""
	verbose := false

	app := cli.App("awesome", "Math notation macros -> LaTeX package, Typora snippets, Anki preamble")
	app.Version("version", app_version())
	app.Spec = "[-c=<CONFIG-FILE>] [-o=<OUTPUT-DIR>] [-v]"
	app.StringOptPtr(&configFN, "c config", export.DefaultConfigFN, "notation config in yaml format")
	app.StringOptPtr(&rootDir, "o output", ".", "directory for the generated files")
	app.BoolOptPtr(&verbose, "v verbose", false, "log debug details")

	app.Action = func() {
		run(export.Options{ConfigFN: configFN, RootDir: rootDir}, verbose)
	}
	return app
}
