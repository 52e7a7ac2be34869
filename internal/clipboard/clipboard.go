package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

var ErrUnavailable = errors.New("no clipboard mechanism available")

// Clipboard places text on a clipboard
type Clipboard interface {
	Copy(ctx context.Context, text []byte) error
	Name() string
}

// Command copies by piping the text to an external program
type Command struct {
	Path string
	Args []string
}

// Name returns the program name
func (c *Command) Name() string {
	return filepath.Base(c.Path)
}

// Copy runs the program with text on its standard input
func (c *Command) Copy(ctx context.Context, text []byte) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = bytes.NewReader(text)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return fmt.Errorf("%s failed: %w: %s", c.Path, err, msg)
		}
		return fmt.Errorf("%s failed: %w", c.Path, err)
	}
	return nil
}

// candidate is a clipboard program and the condition under which it applies
type candidate struct {
	name string
	args []string
	env  string // Required environment variable, empty for none
}

func candidates(goos string) []candidate {
	switch goos {
	case "darwin":
		return []candidate{{name: "pbcopy"}}
	case "windows":
		// Served by the native backend through the Win32 clipboard API
		return nil
	default:
		return []candidate{
			{name: "wl-copy", env: "WAYLAND_DISPLAY"},
			{name: "xclip", args: []string{"-selection", "clipboard", "-i"}, env: "DISPLAY"},
			{name: "xsel", args: []string{"-ib"}, env: "DISPLAY"},
		}
	}
}

// Prober holds the host capabilities Detect looks at
type Prober struct {
	GOOS     string
	LookPath func(file string) (string, error)
	Getenv   func(key string) string
	Terminal func() (Clipboard, bool)
	Native   func() (Clipboard, bool)
}

// HostProber probes the running host
func HostProber() Prober {
	return Prober{
		GOOS:     runtime.GOOS,
		LookPath: exec.LookPath,
		Getenv:   os.Getenv,
		Terminal: terminalClipboard,
		Native:   nativeClipboard,
	}
}

// Detect returns the first usable clipboard on the host
func Detect() (Clipboard, error) {
	return HostProber().Detect()
}

// Detect returns the first usable clipboard. Programs whose display
// environment is set are preferred, then the terminal's OSC 52 support,
// then any installed program, then the native library backend.
func (p Prober) Detect() (Clipboard, error) {
	var installed []*Command

	for _, c := range candidates(p.GOOS) {
		path, err := p.LookPath(c.name)
		if err != nil {
			continue
		}
		cmd := &Command{Path: path, Args: c.args}
		if c.env == "" || p.Getenv(c.env) != "" {
			return cmd, nil
		}
		installed = append(installed, cmd)
	}

	if p.Terminal != nil {
		if cb, ok := p.Terminal(); ok {
			return cb, nil
		}
	}

	if len(installed) > 0 {
		return installed[0], nil
	}

	if p.Native != nil {
		if cb, ok := p.Native(); ok {
			return cb, nil
		}
	}

	return nil, fmt.Errorf("%w on %s", ErrUnavailable, p.GOOS)
}
