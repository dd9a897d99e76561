// Command justext classifies the paragraphs of an HTML page as body text or
// boilerplate and prints them with their labels (or, with --no-boilerplate,
// only the body-text paragraphs).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/go-justext/justext"
	"github.com/go-justext/justext/internal/cliconfig"
	"github.com/go-justext/justext/internal/previewserver"
	"github.com/go-justext/justext/stoplists"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	app := &cli.Command{
		Name:            "justext",
		Usage:           "remove boilerplate from HTML and extract the main content",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
		},
		Commands: []*cli.Command{
			extractCommand(logger),
			langsCommand(),
			serveCommand(logger),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Error("justext failed", "error", err)
		os.Exit(1)
	}
}

func extractCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "extract body paragraphs from an HTML document",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Value: "english", Usage: "stop-list `LANGUAGE` to classify with"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "output `FORMAT`: text or json"},
			&cli.BoolFlag{Name: "no-boilerplate", Usage: "print only paragraphs classified as good"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := cliconfig.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cmd.IsSet("language") {
				cfg.Language = cmd.String("language")
			}
			if cmd.IsSet("format") {
				cfg.Format = cmd.String("format")
			}

			stoplist, err := stoplists.Load(cfg.Language)
			if err != nil {
				return err
			}

			input, err := readInput(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			logger.Debug("extracting", "language", cfg.Language, "bytes", len(input))

			paragraphs, err := justext.Extract(input, stoplist, cfg.Options())
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}

			if cmd.Bool("no-boilerplate") {
				paragraphs = filterGood(paragraphs)
			}

			return writeParagraphs(os.Stdout, paragraphs, cfg.Format)
		},
	}
}

func langsCommand() *cli.Command {
	return &cli.Command{
		Name:  "langs",
		Usage: "list the built-in stop-list languages",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, lang := range stoplists.Available() {
				fmt.Fprintln(os.Stdout, lang)
			}
			return nil
		},
	}
}

func serveCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "serve a live-updating preview of a file's extracted paragraphs",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Value: "english"},
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen `ADDRESS`"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("serve requires a FILE argument")
			}

			cfg, err := cliconfig.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cmd.IsSet("language") {
				cfg.Language = cmd.String("language")
			}

			stoplist, err := stoplists.Load(cfg.Language)
			if err != nil {
				return err
			}

			srv := &previewserver.Server{
				Path:     path,
				Stoplist: stoplist,
				Options:  cfg.Options(),
				Logger:   logger,
			}

			addr := cmd.String("addr")
			logger.Info("serving preview", "addr", addr, "file", path)
			return srv.ListenAndServe(ctx, addr)
		},
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func filterGood(paragraphs []justext.Paragraph) []justext.Paragraph {
	good := make([]justext.Paragraph, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p.Class == justext.ClassGood {
			good = append(good, p)
		}
	}
	return good
}

func writeParagraphs(w io.Writer, paragraphs []justext.Paragraph, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(paragraphs)
	default:
		for _, p := range paragraphs {
			fmt.Fprintf(w, "<%s> %s\n", p.Class, p.Text)
		}
		return nil
	}
}
