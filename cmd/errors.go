package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/illarion/securepass/internal/clipboard"
	"github.com/illarion/securepass/internal/keyring"
	"github.com/illarion/securepass/internal/output"
)

// HandleError reports err on w and returns the process exit code
func HandleError(w io.Writer, err error) int {
	var usageErr *UsageError

	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintf(w, "Error: %s\n", err)
		printUsage(w)
	case errors.Is(err, clipboard.ErrUnavailable):
		fmt.Fprintf(w, "Error: %s\n", err)
		fmt.Fprintf(w, "Install xclip, xsel or wl-copy, or use a terminal with OSC 52 support\n")
	case errors.Is(err, keyring.ErrExists):
		fmt.Fprintf(w, "Error: %s\n", err)
		fmt.Fprintf(w, "Choose another name or pass --overwrite to replace it\n")
	case errors.Is(err, output.ErrKeyring):
		fmt.Fprintf(w, "Error: %s\n", err)
		fmt.Fprintf(w, "Check that the OS keyring (Keychain, Credential Manager, Secret Service) is unlocked\n")
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(w, "Error: interrupted\n")
	default:
		fmt.Fprintf(w, "Error: %s\n", err)
	}
	return 1
}
