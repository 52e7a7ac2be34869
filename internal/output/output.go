package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/illarion/securepass/internal/clipboard"
	"github.com/illarion/securepass/internal/keyring"
	"github.com/illarion/securepass/internal/secure"
)

var (
	ErrOpenFile  = errors.New("cannot open output file")
	ErrClipboard = errors.New("failed to copy password(s) to clipboard")
	ErrKeyring   = errors.New("failed to store password in keyring")
)

// Sink consumes generated passwords
type Sink interface {
	Write(pw *secure.Buffer) error
	Close() error
}

var newline = []byte{'\n'}

func writeLine(w io.Writer, pw *secure.Buffer) error {
	if _, err := pw.WriteTo(w); err != nil {
		return err
	}
	_, err := w.Write(newline)
	return err
}

// Console writes one password per line to a writer
type Console struct {
	w io.Writer
}

// NewConsole returns a sink writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Write prints the password followed by a newline
func (c *Console) Write(pw *secure.Buffer) error {
	return writeLine(c.w, pw)
}

// Close does nothing; the writer belongs to the caller
func (c *Console) Close() error {
	return nil
}

// File writes one password per line to a file
type File struct {
	f    *os.File
	path string
}

// OpenFile opens path for writing, appending or truncating
func OpenFile(path string, appendMode bool) (*File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0600)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	return &File{f: f, path: path}, nil
}

// Write appends the password and a newline
func (f *File) Write(pw *secure.Buffer) error {
	if err := writeLine(f.f, pw); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}

// Close flushes and closes the file
func (f *File) Close() error {
	if err := f.f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", f.path, err)
	}
	return nil
}

// Clipboard gathers passwords and copies them as one newline-joined
// text when closed
type Clipboard struct {
	ctx   context.Context
	cb    clipboard.Clipboard
	parts []*secure.Buffer
}

// NewClipboard returns a sink that copies to cb on Close
func NewClipboard(ctx context.Context, cb clipboard.Clipboard) *Clipboard {
	return &Clipboard{ctx: ctx, cb: cb}
}

// Write keeps a copy of the password until Close
func (c *Clipboard) Write(pw *secure.Buffer) error {
	c.parts = append(c.parts, pw.Clone())
	return nil
}

// Discard wipes every kept password without copying
func (c *Clipboard) Discard() {
	for _, p := range c.parts {
		p.Destroy()
	}
	c.parts = nil
}

// Close copies the aggregate and wipes every kept password
func (c *Clipboard) Close() error {
	defer c.Discard()

	if len(c.parts) == 0 {
		return nil
	}

	text := secure.Join(c.parts, '\n')
	defer text.Destroy()

	if err := c.cb.Copy(c.ctx, text.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return nil
}

// Keyring stores each password in the OS keyring. The first goes under
// the account name, later ones under name-2, name-3 and so on. Existing
// entries are left alone unless overwrite is set.
type Keyring struct {
	account   string
	overwrite bool
	n         int
}

// NewKeyring returns a sink storing under account
func NewKeyring(account string, overwrite bool) *Keyring {
	return &Keyring{account: account, overwrite: overwrite}
}

// Check verifies that count passwords can be stored without replacing an
// existing entry, so a run fails before anything is written
func (k *Keyring) Check(count int) error {
	if k.overwrite {
		return nil
	}
	for n := 1; n <= count; n++ {
		account := AccountName(k.account, n)
		exists, err := keyring.Exists(account)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrKeyring, account, err)
		}
		if exists {
			return fmt.Errorf("%w: %w: %s", ErrKeyring, keyring.ErrExists, account)
		}
	}
	return nil
}

// Write stores the password
func (k *Keyring) Write(pw *secure.Buffer) error {
	k.n++
	account := AccountName(k.account, k.n)
	if err := keyring.SavePassword(account, pw.Bytes(), k.overwrite); err != nil {
		return fmt.Errorf("%w %q: %w", ErrKeyring, account, err)
	}
	return nil
}

// Close does nothing
func (k *Keyring) Close() error {
	return nil
}

// AccountName returns the keyring account for the n-th password (1-based)
func AccountName(base string, n int) string {
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

// Multi fans passwords out to several sinks
type Multi []Sink

// Write passes the password to every sink, stopping at the first error
func (m Multi) Write(pw *secure.Buffer) error {
	for _, s := range m {
		if err := s.Write(pw); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and joins their errors
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard releases every sink after a failed run. Sinks that deliver on
// Close drop their content instead.
func (m Multi) Discard() {
	for _, s := range m {
		if d, ok := s.(interface{ Discard() }); ok {
			d.Discard()
			continue
		}
		_ = s.Close()
	}
}
