package cmd

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: securepass [OPTIONS]")
	fmt.Fprintln(w, "Generate secure passwords with optional constraints.")
	fmt.Fprintf(w, "Version: %s\n", Version)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -l, --length LENGTH  Set the password length (default: 20, minimum: 6)")
	fmt.Fprintln(w, "  -b, --symbol         Require at least one symbol character ('+', '-', '/' or '*')")
	fmt.Fprintln(w, "  -s, --special        Require at least one special character")
	fmt.Fprintln(w, "  -n, --count NUM      Generate NUM passwords (default: 1)")
	fmt.Fprintln(w, "  -q, --quiet          Quiet mode - only print passwords")
	fmt.Fprintln(w, "  -f, --file FILE      Write passwords to FILE (-a to append, otherwise overwrite)")
	fmt.Fprintln(w, "  -a, --append         Append passwords to the file specified with -f")
	fmt.Fprintln(w, "  -c, --clipboard      Copy generated password(s) to clipboard without printing them")
	fmt.Fprintln(w, "  -k, --keyring NAME   Store generated password(s) in the OS keyring under NAME")
	fmt.Fprintln(w, "                       (further passwords go to NAME-2, NAME-3, ...)")
	fmt.Fprintln(w, "      --overwrite      Replace existing keyring entries instead of failing")
	fmt.Fprintln(w, "  -v, --version        Print version and exit")
	fmt.Fprintln(w, "      --completion SH  Print shell completion script (bash, zsh, fish)")
	fmt.Fprintln(w, "  -h, --help           Display this help message and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  securepass                       # One 20-character password")
	fmt.Fprintln(w, "  securepass -l 32 -b -s           # Symbols and special characters")
	fmt.Fprintln(w, "  securepass -n 5 -q -f pw.txt -a  # Append five passwords to pw.txt")
	fmt.Fprintln(w, "  securepass -c                    # Copy to clipboard, print nothing")
}
