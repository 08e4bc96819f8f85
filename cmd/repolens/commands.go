// Package main provides CLI subcommand definitions for repolens.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	urfavecli "github.com/urfave/cli/v2"

	"github.com/fernwick/repolens/internal/export"
	"github.com/fernwick/repolens/internal/gitrepo"
	"github.com/fernwick/repolens/internal/log"
	"github.com/fernwick/repolens/internal/render"
	"github.com/fernwick/repolens/internal/scan"
	"github.com/fernwick/repolens/internal/selection"
	"github.com/fernwick/repolens/internal/theme"
)

// exportCommand emits the selected files as a single LLM-ready text document
// instead of an HTML page.
func exportCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "export",
		Usage:     "Write the repository as an LLM-ready text document",
		ArgsUsage: "<repo-url-or-path>",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write the document to this path instead of stdout",
			},
			&urfavecli.StringSliceFlag{
				Name:  "ext",
				Usage: "Keep only files with this extension (repeatable): --ext .go --ext .md",
			},
			&urfavecli.BoolFlag{
				Name:  "no-tests",
				Usage: "Drop test files from the document",
			},
			&urfavecli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Pick files in a terminal UI before exporting",
			},
		},
		Action: runExport,
	}
}

func runExport(c *urfavecli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one repository URL or path, got %d arguments", c.NArg())
	}
	location := c.Args().First()

	cfg, err := loadRunConfig(c)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checkout, err := gitrepo.Acquire(ctx, location)
	if err != nil {
		return fmt.Errorf("acquiring repository: %w", err)
	}
	defer checkout.Close()

	records, err := scan.Scan(ctx, checkout.Dir, cfg.Policy())
	if err != nil {
		return fmt.Errorf("scanning repository: %w", err)
	}
	render.LoadAll(ctx, records)
	if err := ctx.Err(); err != nil {
		return err
	}

	sel := selection.New(records)
	applyExportFilters(sel, c.StringSlice("ext"), c.Bool("no-tests"))
	if c.Bool("interactive") {
		done, err := runPicker(cfg, checkout, records, sel)
		if err != nil {
			return err
		}
		if !done {
			fmt.Fprintln(os.Stderr, "aborted, no output written")
			return nil
		}
	}
	log.Printf("exporting %d of %d files", sel.Count(), sel.Total())

	doc := export.FromSelection(sel)
	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, []byte(doc), 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", out)
		return nil
	}
	_, err = fmt.Print(doc)
	return err
}

// applyExportFilters narrows the selection to the requested extensions and
// optionally drops test files.
func applyExportFilters(sel *selection.Model, exts []string, noTests bool) {
	keep := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		keep = append(keep, ext)
	}
	switch {
	case len(keep) == 1:
		sel.FilterByExtension(keep[0])
	case len(keep) > 1:
		sel.DeselectAll()
		for _, rec := range sel.Records() {
			for _, ext := range keep {
				if strings.HasSuffix(rec.Rel, ext) {
					sel.ToggleFile(rec.Rel, true)
					break
				}
			}
		}
	}
	if noTests {
		for _, rec := range sel.Records() {
			if selection.IsTestPath(rec.Rel) {
				sel.ToggleFile(rec.Rel, false)
			}
		}
	}
}

// themesCommand lists the UI themes and the syntax style each maps to.
func themesCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "themes",
		Usage: "List available themes",
		Action: func(*urfavecli.Context) error {
			names := theme.AvailableThemes()
			sort.Strings(names)
			fmt.Println("Available themes (syntax style in parentheses):")
			for _, name := range names {
				marker := " "
				if name == theme.DefaultName {
					marker = "*"
				}
				fmt.Printf(" %s %-16s (%s)\n", marker, name, theme.SyntaxStyle(name))
			}
			return nil
		},
	}
}
