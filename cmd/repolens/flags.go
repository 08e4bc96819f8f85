// Package main provides CLI flag definitions for repolens.
package main

import (
	"github.com/fernwick/repolens/internal/classify"
	urfavecli "github.com/urfave/cli/v2"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via App.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Write the HTML document to this path",
		},
		&urfavecli.Int64Flag{
			Name:  "max-bytes",
			Value: classify.DefaultMaxBytes,
			Usage: "Size ceiling in bytes above which files are skipped",
		},
		&urfavecli.BoolFlag{
			Name:  "no-open",
			Usage: "Do not open the document in a browser afterwards",
		},
		&urfavecli.BoolFlag{
			Name:  "keep-bloat",
			Usage: "Include lockfiles and dependency directories",
		},
		&urfavecli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "Pick files in a terminal UI before rendering",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI and syntax highlight theme",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
	}
}
