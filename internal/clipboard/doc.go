// Package clipboard copies text to the host clipboard.
//
// Backends are chosen at startup by probing what the host offers:
//   - darwin: pbcopy
//   - windows: the Win32 clipboard through github.com/atotto/clipboard
//   - others: wl-copy (Wayland), xclip, xsel (X11)
//   - any: OSC 52 escape sequence written to the controlling terminal
//   - any: whatever github.com/atotto/clipboard finds, as a last resort
//
// Detect returns ErrUnavailable when no backend can be used.
package clipboard
