package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/illarion/securepass/internal/clipboard"
	"github.com/illarion/securepass/internal/generator"
	"github.com/illarion/securepass/internal/output"
)

// Env is the process environment a run writes to
type Env struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Clipboard func() (clipboard.Clipboard, error) // Probes the host clipboard
}

// DefaultEnv returns the real process environment
func DefaultEnv() Env {
	return Env{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Clipboard: clipboard.Detect,
	}
}

// Generate produces opts.Count passwords and delivers them to the sinks
// the options select
func Generate(ctx context.Context, opts *Options, env Env) error {
	req := opts.Request()
	if err := req.Validate(); err != nil {
		return &UsageError{Err: err}
	}

	sinks, err := openSinks(ctx, opts, env)
	if err != nil {
		return err
	}

	if !opts.Quiet && opts.File == "" {
		if opts.Count == 1 {
			fmt.Fprint(env.Stdout, "Generated secure password: ")
		} else {
			fmt.Fprintln(env.Stdout, "Generated secure passwords:")
		}
	}

	for i := 0; i < opts.Count; i++ {
		if err := ctx.Err(); err != nil {
			sinks.Discard()
			return err
		}
		if err := emit(sinks, req); err != nil {
			sinks.Discard()
			return err
		}
	}

	return sinks.Close()
}

// emit composes one password, hands it to sink and wipes it
func emit(sink output.Sink, req generator.Request) error {
	pw, err := generator.Generate(req)
	if err != nil {
		return err
	}
	defer pw.Destroy()

	return sink.Write(pw)
}

// openSinks builds the sink set. The clipboard and keyring are checked
// before the output file is touched so a failing check never truncates it.
func openSinks(ctx context.Context, opts *Options, env Env) (output.Multi, error) {
	var sinks output.Multi

	if opts.Clipboard {
		cb, err := env.Clipboard()
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, output.NewClipboard(ctx, cb))
	}

	if opts.Keyring != "" {
		k := output.NewKeyring(opts.Keyring, opts.Overwrite)
		if err := k.Check(opts.Count); err != nil {
			sinks.Discard()
			return nil, err
		}
		sinks = append(sinks, k)
	}

	switch {
	case opts.File != "":
		f, err := output.OpenFile(opts.File, opts.Append)
		if err != nil {
			sinks.Discard()
			return nil, err
		}
		sinks = append(sinks, f)
	case opts.Echo():
		sinks = append(sinks, output.NewConsole(env.Stdout))
	}

	return sinks, nil
}
