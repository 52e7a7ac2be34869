package clipboard

import (
	"context"

	atotto "github.com/atotto/clipboard"
)

// Native copies through github.com/atotto/clipboard: the Win32 clipboard
// API on Windows, termux-clipboard-set and friends elsewhere.
//
// The library takes a string, so each copy leaves one immutable copy of the
// text that cannot be wiped, and a hung helper cannot be canceled. Command
// is preferred wherever it applies.
type Native struct {
	write func(string) error
}

// Name returns the backend name
func (n *Native) Name() string {
	return "native"
}

// Copy places text on the clipboard
func (n *Native) Copy(ctx context.Context, text []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.write(string(text))
}

// nativeClipboard offers the library backend when it found a mechanism
func nativeClipboard() (Clipboard, bool) {
	if atotto.Unsupported {
		return nil, false
	}
	return &Native{write: atotto.WriteAll}, true
}
