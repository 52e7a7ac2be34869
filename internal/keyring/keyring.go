package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "securepass"

var ErrExists = errors.New("keyring entry already exists")

// Exists reports whether an entry is stored under account. A missing entry
// is not an error; a locked or unreachable keyring is.
func Exists(account string) (bool, error) {
	_, err := keyring.Get(serviceName, account)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, keyring.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// SavePassword stores password under account. Unless overwrite is set it
// refuses to replace an existing entry and returns ErrExists.
func SavePassword(account string, password []byte, overwrite bool) error {
	if !overwrite {
		exists, err := Exists(account)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrExists, account)
		}
	}
	return keyring.Set(serviceName, account, string(password))
}
