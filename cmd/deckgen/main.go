package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jorge-barreto/deckgen/internal/config"
	"github.com/jorge-barreto/deckgen/internal/doctor"
	"github.com/jorge-barreto/deckgen/internal/docs"
	"github.com/jorge-barreto/deckgen/internal/generate"
	"github.com/jorge-barreto/deckgen/internal/manifest"
	"github.com/jorge-barreto/deckgen/internal/pipeline"
	"github.com/jorge-barreto/deckgen/internal/registry"
	"github.com/jorge-barreto/deckgen/internal/scaffold"
	"github.com/jorge-barreto/deckgen/internal/source"
	"github.com/jorge-barreto/deckgen/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "deckgen",
		Usage:       "Generate and validate lesson slide decks",
		Description: "Run 'deckgen docs' for documentation on the schema, validators, and manifest semantics.",
		Commands: []*cli.Command{
			initCmd(),
			generateCmd(),
			statusCmd(),
			doctorCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate slide decks from lesson markdown",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Usage: "Process every discovered lesson"},
			&cli.StringFlag{Name: "file", Usage: "Process one lesson by relative path"},
			&cli.StringFlag{Name: "module", Usage: "Process lessons under a directory prefix"},
			&cli.BoolFlag{Name: "debug", Usage: "Persist the rendered prompt beside each artifact"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the lesson plan without generating"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			lessons, err := source.Discover(cfg.ContentDir)
			if err != nil {
				return err
			}

			// Selection. Flag modes are batch; no flags means interactive
			// single-lesson mode.
			var selected []source.Document
			switch {
			case cmd.Bool("all") && (cmd.String("file") != "" || cmd.String("module") != ""):
				return fmt.Errorf("--all cannot be combined with --file or --module")
			case cmd.String("file") != "" && cmd.String("module") != "":
				return fmt.Errorf("--file and --module are mutually exclusive")
			case cmd.Bool("all"):
				selected = lessons
			case cmd.String("file") != "":
				selected, err = source.SelectFile(lessons, cmd.String("file"))
			case cmd.String("module") != "":
				selected, err = source.SelectModule(lessons, cmd.String("module"))
			default:
				selected, err = source.SelectInteractive(ctx, lessons, os.Stdin, os.Stdout)
			}
			if err != nil {
				return err
			}

			// The component whitelist is read fresh every run so the prompt
			// and the validators agree with the current viewer.
			components, err := registry.Components(cfg.RegistryFile)
			if err != nil {
				return err
			}

			p := &pipeline.Pipeline{
				Config:     cfg,
				Components: components,
				Debug:      cmd.Bool("debug"),
				Invoker: &generate.ClaudeInvoker{Opts: generate.Options{
					Model:          cfg.Model,
					TimeoutMinutes: *cfg.TimeoutMinutes,
					Log:            os.Stdout,
				}},
			}

			if cmd.Bool("dry-run") {
				p.DryRunPrint(selected)
				return nil
			}

			if err := generate.Preflight(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			return p.Run(ctx, selected)
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show generated presentations and the last run",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			entries, err := manifest.Load(filepath.Join(cfg.OutputDir, manifest.FileName))
			if err != nil {
				return err
			}
			summary, err := pipeline.LoadSummary(cfg.OutputDir)
			if err != nil {
				return err
			}

			var runID string
			var lines []ux.RunLine
			if summary != nil {
				runID = summary.RunID
				for _, r := range summary.Results {
					lines = append(lines, ux.RunLine{RelPath: r.RelPath, Status: r.Status, Error: r.Error})
				}
			}
			ux.RenderStatus(entries, runID, lines)
			return nil
		},
	}
}

func doctorCmd() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Diagnose the last failed run using AI",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return doctor.Run(ctx, cfg)
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new .deckgen/ directory with example config",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'deckgen docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(projectRoot, ".deckgen", "config.yaml")
	cfg, err := config.Load(configPath, projectRoot)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// findProjectRoot walks up from cwd looking for .deckgen/config.yaml.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		configPath := filepath.Join(dir, ".deckgen", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no .deckgen/config.yaml found (searched from cwd to root)")
		}
		dir = parent
	}
}
