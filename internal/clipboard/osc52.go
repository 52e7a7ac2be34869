package clipboard

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/illarion/securepass/internal/secure"
)

const ttyPath = "/dev/tty"

// OSC52 copies through the terminal's OSC 52 escape sequence. The terminal
// emulator, not the host, owns the clipboard, so this works over SSH.
type OSC52 struct {
	Open func() (io.WriteCloser, error)
	Tmux bool // Wrap the sequence in a tmux DCS passthrough instead
}

// Name returns the backend name
func (o *OSC52) Name() string {
	return "osc52"
}

// Copy writes the escape sequence to the terminal
func (o *OSC52) Copy(ctx context.Context, text []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w, err := o.Open()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer w.Close()

	seq := encodeOSC52(text)
	if o.Tmux {
		seq = wrapTmux(seq)
	}
	defer secure.ClearBytes(seq)

	// One sequence only: the clipboard is set once per copy
	if _, err := w.Write(seq); err != nil {
		return fmt.Errorf("failed to write to terminal: %w", err)
	}
	return nil
}

// wrapTmux wraps seq in a tmux DCS passthrough, doubling its leading escape.
// seq is wiped.
func wrapTmux(seq []byte) []byte {
	wrapped := make([]byte, 0, len(seq)+16)
	wrapped = append(wrapped, "\x1bPtmux;\x1b"...)
	wrapped = append(wrapped, seq...)
	wrapped = append(wrapped, "\x1b\\"...)
	secure.ClearBytes(seq)
	return wrapped
}

// encodeOSC52 builds ESC ] 52 ; c ; <base64> BEL. BEL survives nested
// terminals better than the two-byte ST terminator.
func encodeOSC52(text []byte) []byte {
	const prefix = "\x1b]52;c;"
	n := base64.StdEncoding.EncodedLen(len(text))
	seq := make([]byte, len(prefix)+n+1)
	copy(seq, prefix)
	base64.StdEncoding.Encode(seq[len(prefix):], text)
	seq[len(seq)-1] = '\a'
	return seq
}

func inTmux(getenv func(string) string) bool {
	t := getenv("TERM")
	return getenv("TMUX") != "" ||
		strings.HasPrefix(t, "tmux") ||
		strings.HasPrefix(t, "screen")
}

// terminalClipboard offers OSC 52 when the process has a controlling terminal
func terminalClipboard() (Clipboard, bool) {
	tty, err := os.OpenFile(ttyPath, os.O_WRONLY, 0)
	if err != nil {
		return nil, false
	}
	defer tty.Close()

	if !term.IsTerminal(int(tty.Fd())) {
		return nil, false
	}

	return &OSC52{
		Open: func() (io.WriteCloser, error) {
			return os.OpenFile(ttyPath, os.O_WRONLY, 0)
		},
		Tmux: inTmux(os.Getenv),
	}, true
}
