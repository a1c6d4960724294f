// Command oshb decodes OSHB morphology codes, transliterates Hebrew and
// assigns word slugs to OSIS files from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/hebrew-lexicon/oshb/internal/batch"
	"github.com/hebrew-lexicon/oshb/internal/config"
	"github.com/hebrew-lexicon/oshb/internal/logging"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config    string `help:"Path to config.yaml (default: $CONFIG_PATH or ./config.yaml)" type:"path"`
	LogLevel  string `name:"log-level" help:"Override log level"`
	LogFormat string `name:"log-format" help:"Override log format"`
}

// CLI defines the command-line interface for oshb.
type CLI struct {
	Globals

	Decode   DecodeCmd   `cmd:"" help:"Decode morphology codes"`
	Translit TranslitCmd `cmd:"" help:"Transliterate Hebrew text and print its slug"`
	Slugs    SlugsCmd    `cmd:"" help:"Assign per-verse word slugs to OSIS files"`
	Report   ReportCmd   `cmd:"" help:"Decode every morph code in OSIS files and report errors"`
}

// app carries what the commands need once flags are parsed.
type app struct {
	ctx    context.Context
	out    io.Writer
	cfg    *config.Config
	log    *slog.Logger
	runner *batch.Runner
}

func newApp(ctx context.Context, g Globals, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	log := logging.New(cfg.Log, stderr)
	return &app{
		ctx:    ctx,
		out:    stdout,
		cfg:    cfg,
		log:    log,
		runner: batch.New(cfg.Batch, log),
	}, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("oshb"),
		kong.Description("OSHB morphology decoder and Hebrew transliterator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	a, err := newApp(ctx, cli.Globals, stdout, stderr)
	if err != nil {
		return err
	}
	return kctx.Run(a)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "oshb:", err)
		os.Exit(1)
	}
}
