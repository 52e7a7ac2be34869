// Package keyring stores generated passwords in the OS secret store
// (macOS Keychain, Windows Credential Manager, Secret Service on Linux).
//
// Entries use the service name "securepass" and a caller-chosen account.
// The backend API takes a string, so the one copy made for it cannot be
// wiped by the caller.
package keyring
