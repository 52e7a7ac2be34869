package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/illarion/securepass/internal/secure"
)

const (
	MinLength     = 6  // Shortest length that fits the seeded classes and a Special quota
	DefaultLength = 20 // Length used when none is requested
)

var ErrLengthTooShort = errors.New("password length must be at least 6")

// Request describes one password to compose
type Request struct {
	Length  int
	Symbol  bool // Require at least one Symbol character
	Special bool // Require between 1 and Length/3 Special characters
}

// Validate checks the request preconditions of Compose
func (r Request) Validate() error {
	if r.Length < MinLength {
		return fmt.Errorf("%w (got %d)", ErrLengthTooShort, r.Length)
	}
	return nil
}

// Generate composes a password using the system's cryptographic random source
func Generate(req Request) (*secure.Buffer, error) {
	return Compose(rand.Reader, req)
}

// Compose fills a new buffer of req.Length characters drawn from r.
//
// The request must satisfy Validate; Compose does not check it.
// The returned buffer is sealed and owned by the caller.
func Compose(r io.Reader, req Request) (_ *secure.Buffer, err error) {
	buf := secure.NewBuffer(req.Length)
	defer func() {
		if err != nil {
			buf.Destroy()
		}
	}()

	d := drawer{r: r}

	seeds := []Class{Upper, Lower, Digit}
	free := []Class{Upper, Lower, Digit}
	if req.Symbol {
		seeds = append(seeds, Symbol)
		free = append(free, Symbol)
	}
	for i, c := range seeds {
		ch, err := d.char(c)
		if err != nil {
			return nil, err
		}
		buf.Set(i, ch)
	}

	quota := 0
	if req.Special {
		n, err := d.intn(req.Length / 3)
		if err != nil {
			return nil, err
		}
		quota = n + 1
	}

	placed := 0
	for i := len(seeds); i < req.Length; i++ {
		class := Special
		// The last quota slots are reserved so the quota always fits
		if placed >= quota || i < req.Length-quota {
			n, err := d.intn(len(free))
			if err != nil {
				return nil, err
			}
			class = free[n]
		} else {
			placed++
		}

		ch, err := d.char(class)
		if err != nil {
			return nil, err
		}
		buf.Set(i, ch)
	}

	// Fisher-Yates
	for i := req.Length - 1; i > 0; i-- {
		j, err := d.intn(i + 1)
		if err != nil {
			return nil, err
		}
		buf.Swap(i, j)
	}

	buf.Seal()
	return buf, nil
}

// drawer turns a random byte stream into uniform integer draws
type drawer struct {
	r io.Reader
}

// intn returns a uniform integer in [0, n)
func (d drawer) intn(n int) (int, error) {
	v, err := rand.Int(d.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return int(v.Int64()), nil
}

func (d drawer) char(c Class) (byte, error) {
	alphabet := c.Alphabet()
	n, err := d.intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[n], nil
}
