package generator

import "strings"

// Class is a character category
type Class int

const (
	Upper Class = iota
	Lower
	Digit
	Symbol
	Special
)

// Alphabets backing each class. Symbol and Special are disjoint, so every
// character belongs to exactly one class.
const (
	UpperAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerAlphabet   = "abcdefghijklmnopqrstuvwxyz"
	DigitAlphabet   = "0123456789"
	SymbolAlphabet  = "+-/*"
	// SpecialAlphabet is the usual punctuation set without '*', which is
	// left to SymbolAlphabet to keep the classes disjoint.
	SpecialAlphabet = "!@#$%^&()_= [{]}\\|;:'\",<.>?`~"
)

var classes = [...]Class{Upper, Lower, Digit, Symbol, Special}

// Alphabet returns the characters of the class
func (c Class) Alphabet() string {
	switch c {
	case Upper:
		return UpperAlphabet
	case Lower:
		return LowerAlphabet
	case Digit:
		return DigitAlphabet
	case Symbol:
		return SymbolAlphabet
	case Special:
		return SpecialAlphabet
	default:
		return ""
	}
}

func (c Class) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Classify returns the class containing ch
func Classify(ch byte) (Class, bool) {
	for _, c := range classes {
		if strings.IndexByte(c.Alphabet(), ch) >= 0 {
			return c, true
		}
	}
	return 0, false
}
