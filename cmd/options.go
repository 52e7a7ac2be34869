package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/illarion/securepass/internal/generator"
)

// Version of securepass
const Version = "1.1.0"

var (
	ErrCountTooSmall   = errors.New("number of passwords must be at least 1")
	ErrAppendNeedsFile = errors.New("-a requires -f FILE")
	ErrUnexpectedArg   = errors.New("unexpected argument")
	ErrOverwriteNeedsK = errors.New("--overwrite requires -k NAME")
)

// UsageError marks errors caused by bad command-line input. They are
// reported together with the usage text.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// Options holds everything parsed from the command line
type Options struct {
	Length    int
	Symbol    bool
	Special   bool
	Count     int
	Quiet     bool
	File      string
	Append    bool
	Clipboard bool
	Keyring   string
	Overwrite bool

	Help       bool
	Version    bool
	Completion string
}

// Request returns the composer request for these options
func (o *Options) Request() generator.Request {
	return generator.Request{
		Length:  o.Length,
		Symbol:  o.Symbol,
		Special: o.Special,
	}
}

// Echo reports whether passwords go to standard output
func (o *Options) Echo() bool {
	return o.File == "" && !o.Clipboard && o.Keyring == ""
}

func newFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("securepass", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.IntVarP(&opts.Length, "length", "l", generator.DefaultLength, "Set the password length (minimum: 6)")
	fs.BoolVarP(&opts.Symbol, "symbol", "b", false, "Require at least one symbol character ('+', '-', '/' or '*')")
	fs.BoolVarP(&opts.Special, "special", "s", false, "Require at least one special character")
	fs.IntVarP(&opts.Count, "count", "n", 1, "Generate NUM passwords")
	fs.BoolVarP(&opts.Quiet, "quiet", "q", false, "Quiet mode - only print passwords")
	fs.StringVarP(&opts.File, "file", "f", "", "Write passwords to FILE (-a to append, otherwise overwrite)")
	fs.BoolVarP(&opts.Append, "append", "a", false, "Append passwords to the file specified with -f")
	fs.BoolVarP(&opts.Clipboard, "clipboard", "c", false, "Copy generated password(s) to clipboard without printing them")
	fs.StringVarP(&opts.Keyring, "keyring", "k", "", "Store generated password(s) in the OS keyring under NAME")
	fs.BoolVar(&opts.Overwrite, "overwrite", false, "Replace existing keyring entries instead of failing")
	fs.BoolVarP(&opts.Version, "version", "v", false, "Print version and exit")
	fs.StringVar(&opts.Completion, "completion", "", "Print shell completion script (bash, zsh, fish)")
	fs.BoolVarP(&opts.Help, "help", "h", false, "Display this help message and exit")

	return fs
}

// ParseArgs parses and validates command-line arguments
func ParseArgs(args []string) (*Options, error) {
	opts := &Options{}
	fs := newFlagSet(opts)

	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{Err: err}
	}

	if opts.Help || opts.Version || opts.Completion != "" {
		return opts, nil
	}

	if fs.NArg() > 0 {
		return nil, usageErrorf("%w: %s", ErrUnexpectedArg, strings.Join(fs.Args(), " "))
	}

	if err := opts.Request().Validate(); err != nil {
		return nil, &UsageError{Err: err}
	}
	if opts.Count < 1 {
		return nil, usageErrorf("%w (got %d)", ErrCountTooSmall, opts.Count)
	}
	if opts.Append && opts.File == "" {
		return nil, &UsageError{Err: ErrAppendNeedsFile}
	}
	if opts.Overwrite && opts.Keyring == "" {
		return nil, &UsageError{Err: ErrOverwriteNeedsK}
	}

	// Passwords leaving through the clipboard or keyring are never echoed
	if opts.Clipboard || opts.Keyring != "" {
		opts.Quiet = true
	}

	return opts, nil
}
