// Command quaddiff replays a scripted editing session against a quadtree and
// writes one image per update showing the tree and what changed since the
// previous update.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/robert-butts/quaddiff/internal/config"
	"github.com/robert-butts/quaddiff/internal/driver"
	"github.com/robert-butts/quaddiff/internal/logger"
	"github.com/robert-butts/quaddiff/internal/render"
)

// Version information, set by ldflags during build.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	app := kingpin.New("quaddiff", "Quadtree change visualiser.")
	app.Version(Version + " (" + GitCommit + ")")
	app.HelpFlag.Short('h')

	var (
		overrides         config.Overrides
		depth             int
		format, outputDir string
	)
	envFile := app.Flag("env-file", "settings file read before the environment").Default(".env").String()
	app.Flag("depth", "tree depth, overrides QUADDIFF_DEPTH").
		Action(func(*kingpin.ParseContext) error { overrides.Depth = &depth; return nil }).
		IntVar(&depth)
	app.Flag("format", "frame format: png or svg, overrides QUADDIFF_FORMAT").
		Action(func(*kingpin.ParseContext) error { overrides.Format = &format; return nil }).
		StringVar(&format)
	app.Flag("out", "frame output directory, overrides QUADDIFF_OUTPUT_DIR").
		Action(func(*kingpin.ParseContext) error { overrides.OutputDir = &outputDir; return nil }).
		StringVar(&outputDir)

	runCmd := app.Command("run", "apply a command script and write a frame per update")
	script := runCmd.Flag("script", "command script, one command per line; - reads stdin").Default("-").String()

	snapshotCmd := app.Command("snapshot", "write the initial frame only")
	controlsCmd := app.Command("controls", "list the commands a script may use")

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger.Setup()
	log := logger.L()
	if cmd == controlsCmd.FullCommand() {
		if err := driver.Controls(os.Stdout); err != nil {
			log.WithError(err).Fatal("controls")
		}
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	if err := cfg.Apply(overrides); err != nil {
		log.WithError(err).Fatal("config")
	}

	palette, err := render.ParsePalette(cfg.TreeColor, cfg.AddedColor, cfg.RemovedColor, cfg.PointColor, cfg.BackgroundColor)
	if err != nil {
		log.WithError(err).Fatal("palette")
	}
	sink := &driver.Files{
		Dir:     cfg.OutputDir,
		Format:  cfg.Format,
		Surface: cfg.Surface(),
		Palette: palette,
		Log:     log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cmd {
	case runCmd.FullCommand():
		err = run(ctx, cfg, *script, sink)
	case snapshotCmd.FullCommand():
		err = snapshot(cfg, sink)
	}
	if err != nil {
		log.WithError(err).Error("quaddiff")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, script string, sink driver.FrameSink) error {
	log := logger.L()
	var r io.Reader = os.Stdin
	if script != "-" {
		f, err := os.Open(script)
		if err != nil {
			return errors.Wrap(err, "opening script")
		}
		defer f.Close()
		r = f
	}
	cmds, err := driver.ReadScript(r)
	if err != nil {
		return err
	}

	start := time.Now()
	err = driver.New(cfg, log).Run(ctx, cmds, sink)
	log.WithFields(logrus.Fields{
		"commands": len(cmds),
		"elapsed":  time.Since(start).String(),
	}).Info("session_done")
	return err
}

func snapshot(cfg *config.Config, sink driver.FrameSink) error {
	log := logger.L()
	start := time.Now()
	f, err := driver.New(cfg, log).Start()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"points":  len(f.Points),
		"nodes":   f.Current.Nodes(),
		"depth":   f.State.Depth,
		"elapsed": time.Since(start).String(),
	}).Info("tree_built")
	return sink.WriteFrame(f)
}
