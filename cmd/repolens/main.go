// Package main is the entry point for the repolens application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"

	"github.com/fernwick/repolens/internal/app"
	"github.com/fernwick/repolens/internal/browser"
	"github.com/fernwick/repolens/internal/buildinfo"
	"github.com/fernwick/repolens/internal/config"
	"github.com/fernwick/repolens/internal/emit"
	"github.com/fernwick/repolens/internal/gitrepo"
	"github.com/fernwick/repolens/internal/log"
	"github.com/fernwick/repolens/internal/models"
	"github.com/fernwick/repolens/internal/render"
	"github.com/fernwick/repolens/internal/scan"
	"github.com/fernwick/repolens/internal/selection"
	"github.com/fernwick/repolens/internal/theme"
	"github.com/fernwick/repolens/internal/tree"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	buildinfo.Enrich()
	urfavecli.VersionPrinter = printVersion

	cliApp := &urfavecli.App{
		Name:                 "repolens",
		Usage:                "Render a git repository as a single reviewable HTML page",
		ArgsUsage:            "<repo-url-or-path>",
		Version:              buildinfo.Version(),
		EnableBashCompletion: true,

		Flags: globalFlags(),

		Commands: []*urfavecli.Command{
			exportCommand(),
			themesCommand(),
		},

		Action: runRender,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// printVersion handles --version with the full build metadata line.
func printVersion(*urfavecli.Context) {
	fmt.Println(buildinfo.Summary())
}

// runRender is the default action: scan, render, emit the HTML document and
// optionally open it in the viewer.
func runRender(c *urfavecli.Context) error {
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
	log.Printf("repository ready at %s (commit %s)", checkout.Dir, checkout.ShortCommit())

	records, err := scan.Scan(ctx, checkout.Dir, cfg.Policy())
	if err != nil {
		return fmt.Errorf("scanning repository: %w", err)
	}
	included := scan.Included(records)
	log.Printf("scanned %d files, %d included", len(records), len(included))

	renderer := render.New(theme.SyntaxStyle(cfg.Theme))
	renderer.RenderAll(ctx, records)
	if err := ctx.Err(); err != nil {
		return err
	}

	sel := selection.New(records)
	if c.Bool("interactive") {
		done, err := runPicker(cfg, checkout, records, sel)
		if err != nil {
			return err
		}
		if !done {
			fmt.Fprintln(os.Stderr, "aborted, no output written")
			return nil
		}
		records = applySelection(records, sel)
	}

	highlightCSS := renderer.StyleCSS()
	doc, err := emit.Document(checkout, records, highlightCSS)
	if err != nil {
		return fmt.Errorf("emitting document: %w", err)
	}

	outPath := outputPath(c, cfg, location)
	if err := os.WriteFile(outPath, []byte(doc), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s\n", outPath)

	if cfg.OpenViewer && !c.Bool("no-open") {
		if err := browser.Open(outPath); err != nil {
			fmt.Fprintf(os.Stderr, "could not open viewer: %v\n", err)
		}
	}
	return nil
}

// runPicker shows the interactive selector. It reports false when the user
// aborted instead of exporting.
func runPicker(cfg *config.AppConfig, checkout *gitrepo.Checkout, records []*models.FileRecord, sel *selection.Model) (bool, error) {
	if !browser.IsInteractive(int(os.Stdout.Fd())) {
		return false, fmt.Errorf("interactive mode requires a terminal")
	}
	root := tree.Build(records)
	model := app.NewModel(cfg, gitrepo.Name(checkout.Location), checkout.ShortCommit(), root, sel)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("running picker: %w", err)
	}
	picked, ok := final.(*app.Model)
	if !ok {
		picked = model
	}
	return picked.Exported(), nil
}

// applySelection drops included records the user deselected. Excluded records
// stay so the skip lists in the document remain complete.
func applySelection(records []*models.FileRecord, sel *selection.Model) []*models.FileRecord {
	kept := make([]*models.FileRecord, 0, len(records))
	for _, rec := range records {
		if rec.Verdict.Included() && !sel.IsSelected(rec.Rel) {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

// outputPath resolves where the HTML document goes: explicit flag, configured
// output directory, then a temp-dir default named after the repository.
func outputPath(c *urfavecli.Context, cfg *config.AppConfig, location string) string {
	if out := c.String("out"); out != "" {
		if expanded, err := config.ExpandPath(out); err == nil {
			return expanded
		}
		return out
	}
	if cfg.OutputDir != "" {
		if expanded, err := config.ExpandPath(cfg.OutputDir); err == nil {
			return filepath.Join(expanded, gitrepo.Name(location)+".html")
		}
		return filepath.Join(cfg.OutputDir, gitrepo.Name(location)+".html")
	}
	return gitrepo.DefaultOutputPath(location)
}

// loadRunConfig loads the configuration file and applies flag overrides.
func loadRunConfig(c *urfavecli.Context) (*config.AppConfig, error) {
	setupDebugLogFromFlag(c.String("debug-log"))

	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if c.String("debug-log") == "" {
		if cfg.DebugLog != "" {
			path := cfg.DebugLog
			if expanded, err := config.ExpandPath(path); err == nil {
				path = expanded
			}
			if err := log.SetFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error opening debug log file from config %q: %v\n", path, err)
			}
		} else {
			_ = log.SetFile("")
		}
	}

	if name := c.String("theme"); name != "" {
		normalized := config.NormalizeThemeName(name)
		if normalized == "" {
			return nil, fmt.Errorf("unknown theme %q", name)
		}
		cfg.Theme = normalized
	}
	if c.IsSet("max-bytes") {
		maxBytes := c.Int64("max-bytes")
		if maxBytes <= 0 {
			return nil, fmt.Errorf("max-bytes must be positive, got %d", maxBytes)
		}
		cfg.MaxFileSize = maxBytes
	}
	if c.Bool("keep-bloat") {
		cfg.SkipBloat = false
	}
	return cfg, nil
}

func setupDebugLogFromFlag(debugLog string) {
	if debugLog == "" {
		return
	}
	path := debugLog
	if expanded, err := config.ExpandPath(debugLog); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

func closeLog() {
	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
	}
}
