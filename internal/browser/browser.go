// Package browser opens the produced document in the system viewer.
// Opening is best-effort: a missing opener or a failed launch is reported to
// the caller but is never fatal to the run.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"golang.org/x/term"
)

// LookupPath is used to find the opener executable. Exposed as a package
// variable so tests can mock it.
var LookupPath = exec.LookPath

// startCommand launches the opener without waiting. Replaceable in tests.
var startCommand = func(name string, args ...string) error {
	// #nosec G204 -- name is one of the fixed opener binaries below
	return exec.Command(name, args...).Start()
}

// Open launches the system viewer on a file:// URI or local path.
func Open(target string) error {
	name, args := openerFor(runtime.GOOS)
	if name == "" {
		return fmt.Errorf("no viewer opener for %s", runtime.GOOS)
	}
	if _, err := LookupPath(name); err != nil {
		return fmt.Errorf("viewer opener %q not found: %w", name, err)
	}
	args = append(args, target)
	if err := startCommand(name, args...); err != nil {
		return fmt.Errorf("launching %s: %w", name, err)
	}
	return nil
}

func openerFor(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "cmd", []string{"/c", "start", ""}
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", nil
	default:
		return "", nil
	}
}

// IsInteractive reports whether the given file descriptor is a terminal.
// The viewer is only auto-opened for interactive runs.
func IsInteractive(fd int) bool {
	return term.IsTerminal(fd)
}
