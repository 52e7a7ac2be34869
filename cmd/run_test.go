package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/illarion/securepass/internal/clipboard"
	"github.com/illarion/securepass/internal/generator"
)

type testEnv struct {
	stdout, stderr bytes.Buffer
	clip           *clipboard.Fake
	probeErr       error
}

func newTestEnv() *testEnv {
	return &testEnv{clip: &clipboard.Fake{}}
}

func (e *testEnv) env() Env {
	return Env{
		Stdout: &e.stdout,
		Stderr: &e.stderr,
		Clipboard: func() (clipboard.Clipboard, error) {
			if e.probeErr != nil {
				return nil, e.probeErr
			}
			return e.clip, nil
		},
	}
}

func run(t *testing.T, e *testEnv, args ...string) int {
	t.Helper()
	return Run(context.Background(), args, e.env())
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func checkPassword(t *testing.T, pw string, length int) {
	t.Helper()
	if len(pw) != length {
		t.Fatalf("Expected length %d, got %d (%q)", length, len(pw), pw)
	}
	seen := make(map[generator.Class]bool)
	for i := 0; i < len(pw); i++ {
		c, ok := generator.Classify(pw[i])
		if !ok {
			t.Fatalf("Unexpected character %q in %q", pw[i], pw)
		}
		seen[c] = true
	}
	for _, c := range []generator.Class{generator.Upper, generator.Lower, generator.Digit} {
		if !seen[c] {
			t.Fatalf("Missing %s character in %q", c, pw)
		}
	}
}

func TestRunQuietCount(t *testing.T) {
	e := newTestEnv()
	if code := run(t, e, "-l", "6", "-n", "3", "-q"); code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, e.stderr.String())
	}

	got := lines(e.stdout.String())
	if len(got) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(got), e.stdout.String())
	}
	for _, pw := range got {
		checkPassword(t, pw, 6)
	}
	if e.stderr.Len() != 0 {
		t.Errorf("Expected no stderr output, got %q", e.stderr.String())
	}
}

func TestRunBanner(t *testing.T) {
	e := newTestEnv()
	if code := run(t, e); code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	out := e.stdout.String()
	if !strings.HasPrefix(out, "Generated secure password: ") {
		t.Fatalf("Expected single-password banner, got %q", out)
	}
	checkPassword(t, strings.TrimSuffix(strings.TrimPrefix(out, "Generated secure password: "), "\n"), generator.DefaultLength)

	e = newTestEnv()
	if code := run(t, e, "-n", "2"); code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	got := lines(e.stdout.String())
	if len(got) != 3 || got[0] != "Generated secure passwords:" {
		t.Errorf("Expected banner line plus 2 passwords, got %q", got)
	}
}

func TestRunLengthTooShort(t *testing.T) {
	e := newTestEnv()
	if code := run(t, e, "-l", "5"); code == 0 {
		t.Fatal("Expected non-zero exit for length 5")
	}
	if e.stdout.Len() != 0 {
		t.Errorf("No passwords should be printed, got %q", e.stdout.String())
	}
	if !strings.Contains(e.stderr.String(), "Error: password length must be at least 6") {
		t.Errorf("Expected length error, got %q", e.stderr.String())
	}
	if !strings.Contains(e.stderr.String(), "Usage: securepass") {
		t.Errorf("Expected usage text after usage error, got %q", e.stderr.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-x"}, "unknown shorthand flag"},
		{"missing length value", []string{"-l"}, "needs an argument"},
		{"bad length value", []string{"-l", "abc"}, "invalid argument"},
		{"missing file value", []string{"-f"}, "needs an argument"},
		{"zero count", []string{"-n", "0"}, "at least 1"},
		{"append without file", []string{"-a"}, "-a requires -f"},
		{"positional", []string{"extra"}, "unexpected argument: extra"},
		{"unknown shell", []string{"--completion", "tcsh"}, "unknown shell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv()
			if code := run(t, e, tt.args...); code != 1 {
				t.Fatalf("Expected exit 1, got %d", code)
			}
			if !strings.Contains(e.stderr.String(), tt.want) {
				t.Errorf("Expected %q in stderr, got %q", tt.want, e.stderr.String())
			}
			if !strings.Contains(e.stderr.String(), "Usage: securepass") {
				t.Errorf("Expected usage text, got %q", e.stderr.String())
			}
		})
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	e := newTestEnv()
	if code := run(t, e, "-h"); code != 0 {
		t.Fatalf("Expected exit 0 for -h, got %d", code)
	}
	if !strings.Contains(e.stdout.String(), "Usage: securepass") {
		t.Errorf("Expected usage on stdout, got %q", e.stdout.String())
	}

	e = newTestEnv()
	if code := run(t, e, "--version"); code != 0 {
		t.Fatalf("Expected exit 0 for --version, got %d", code)
	}
	if e.stdout.String() != "securepass "+Version+"\n" {
		t.Errorf("Unexpected version output %q", e.stdout.String())
	}
}

func TestRunFileAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	countLines := func() []string {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read output file: %v", err)
		}
		return lines(string(data))
	}

	for i := 0; i < 2; i++ {
		e := newTestEnv()
		if code := run(t, e, "-f", path, "-a", "-n", "2"); code != 0 {
			t.Fatalf("Run %d: expected exit 0, got %d: %s", i, code, e.stderr.String())
		}
		if e.stdout.Len() != 0 {
			t.Errorf("File output should not echo to stdout, got %q", e.stdout.String())
		}
	}

	got := countLines()
	if len(got) != 4 {
		t.Fatalf("Expected 4 lines after two appending runs, got %d", len(got))
	}
	for _, pw := range got {
		checkPassword(t, pw, generator.DefaultLength)
	}

	e := newTestEnv()
	if code := run(t, e, "-f", path, "-l", "8"); code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	got = countLines()
	if len(got) != 1 {
		t.Fatalf("Truncating run should leave 1 line, got %d", len(got))
	}
	checkPassword(t, got[0], 8)
}

func TestRunFileOpenFailure(t *testing.T) {
	e := newTestEnv()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")
	if code := run(t, e, "-f", path); code != 1 {
		t.Fatalf("Expected exit 1, got %d", code)
	}
	if !strings.Contains(e.stderr.String(), "cannot open output file") {
		t.Errorf("Expected open error, got %q", e.stderr.String())
	}
}

func TestRunClipboard(t *testing.T) {
	e := newTestEnv()
	if code := run(t, e, "-c", "-n", "3", "-l", "10", "-b"); code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, e.stderr.String())
	}
	if e.stdout.Len() != 0 {
		t.Errorf("Clipboard mode should print nothing, got %q", e.stdout.String())
	}

	copies := e.clip.Copies()
	if len(copies) != 1 {
		t.Fatalf("Expected a single clipboard copy, got %d", len(copies))
	}
	if strings.HasSuffix(copies[0], "\n") {
		t.Error("Clipboard text should not end with a newline")
	}
	pws := strings.Split(copies[0], "\n")
	if len(pws) != 3 {
		t.Fatalf("Expected 3 passwords on clipboard, got %d", len(pws))
	}
	for _, pw := range pws {
		checkPassword(t, pw, 10)
		if !strings.ContainsAny(pw, generator.SymbolAlphabet) {
			t.Errorf("Expected a symbol in %q", pw)
		}
	}
}

func TestRunClipboardWithFile(t *testing.T) {
	e := newTestEnv()
	path := filepath.Join(t.TempDir(), "out.txt")
	if code := run(t, e, "-c", "-f", path, "-n", "2"); code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, e.stderr.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	copies := e.clip.Copies()
	if len(copies) != 1 {
		t.Fatalf("Expected one clipboard copy, got %d", len(copies))
	}
	if string(data) != copies[0]+"\n" {
		t.Errorf("File and clipboard should hold the same passwords: %q vs %q", data, copies[0])
	}
}

func TestRunClipboardUnavailable(t *testing.T) {
	e := newTestEnv()
	e.probeErr = clipboard.ErrUnavailable
	path := filepath.Join(t.TempDir(), "keep.txt")
	if err := os.WriteFile(path, []byte("existing\n"), 0600); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	if code := run(t, e, "-c", "-f", path); code != 1 {
		t.Fatalf("Expected exit 1, got %d", code)
	}
	if !strings.Contains(e.stderr.String(), "no clipboard mechanism available") {
		t.Errorf("Expected clipboard error, got %q", e.stderr.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "existing\n" {
		t.Errorf("File should be untouched when the clipboard is missing, got %q", data)
	}
}

func TestRunClipboardCopyFailure(t *testing.T) {
	e := newTestEnv()
	e.clip.Err = errors.New("xclip exited 1")

	if code := run(t, e, "-c"); code != 1 {
		t.Fatalf("Expected exit 1, got %d", code)
	}
	if !strings.Contains(e.stderr.String(), "failed to copy password(s) to clipboard") {
		t.Errorf("Expected copy failure message, got %q", e.stderr.String())
	}
}

func TestRunKeyring(t *testing.T) {
	gokeyring.MockInit()

	e := newTestEnv()
	if code := run(t, e, "-k", "db", "-n", "2", "-l", "12", "-s"); code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, e.stderr.String())
	}
	if e.stdout.Len() != 0 {
		t.Errorf("Keyring mode should print nothing, got %q", e.stdout.String())
	}

	for _, account := range []string{"db", "db-2"} {
		pw, err := gokeyring.Get("securepass", account)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", account, err)
		}
		checkPassword(t, pw, 12)
	}
}

func TestRunKeyringExistingEntry(t *testing.T) {
	gokeyring.MockInit()
	if err := gokeyring.Set("securepass", "db-2", "precious"); err != nil {
		t.Fatalf("Failed to seed keyring: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("existing\n"), 0600); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	e := newTestEnv()
	if code := run(t, e, "-k", "db", "-n", "2", "-f", path); code != 1 {
		t.Fatalf("Expected exit 1, got %d", code)
	}
	if !strings.Contains(e.stderr.String(), "already exists") || !strings.Contains(e.stderr.String(), "--overwrite") {
		t.Errorf("Expected existing-entry error with hint, got %q", e.stderr.String())
	}

	if _, err := gokeyring.Get("securepass", "db"); !errors.Is(err, gokeyring.ErrNotFound) {
		t.Errorf("Nothing should be stored when a later entry exists, got %v", err)
	}
	if got, _ := gokeyring.Get("securepass", "db-2"); got != "precious" {
		t.Errorf("Existing entry was replaced: %q", got)
	}
	if data, _ := os.ReadFile(path); string(data) != "existing\n" {
		t.Errorf("Output file should be untouched, got %q", data)
	}

	e = newTestEnv()
	if code := run(t, e, "-k", "db", "-n", "2", "--overwrite"); code != 0 {
		t.Fatalf("Expected exit 0 with --overwrite, got %d: %s", code, e.stderr.String())
	}
	pw, err := gokeyring.Get("securepass", "db-2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	checkPassword(t, pw, generator.DefaultLength)
}

func TestRunKeyringFailure(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("locked"))
	defer gokeyring.MockInit()

	e := newTestEnv()
	if code := run(t, e, "-k", "db"); code != 1 {
		t.Fatalf("Expected exit 1, got %d", code)
	}
	if !strings.Contains(e.stderr.String(), "keyring") {
		t.Errorf("Expected keyring error, got %q", e.stderr.String())
	}
}

func TestRunCanceled(t *testing.T) {
	e := newTestEnv()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := Run(ctx, []string{"-c", "-n", "5"}, e.env()); code != 1 {
		t.Fatalf("Expected exit 1, got %d", code)
	}
	if len(e.clip.Copies()) != 0 {
		t.Error("Canceled run should not copy to the clipboard")
	}
	if !strings.Contains(e.stderr.String(), "interrupted") {
		t.Errorf("Expected interrupted message, got %q", e.stderr.String())
	}
}

func TestRunCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		t.Run(shell, func(t *testing.T) {
			e := newTestEnv()
			if code := run(t, e, "--completion", shell); code != 0 {
				t.Fatalf("Expected exit 0, got %d", code)
			}
			out := e.stdout.String()
			for _, flag := range []string{"length", "symbol", "special", "count", "quiet", "file", "append", "clipboard", "keyring", "overwrite", "help"} {
				if !strings.Contains(out, flag) {
					t.Errorf("%s completion missing %q", shell, flag)
				}
			}
		})
	}
}
