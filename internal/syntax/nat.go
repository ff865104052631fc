package syntax

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxNat is the largest natural number literal the language accepts.
const MaxNat = 4294967295

// natLimit is MaxNat/10: once the running value passes it, one more digit
// always overflows.
const natLimit = 429496729

var (
	// ErrNatOverflow is returned for a literal greater than MaxNat.
	ErrNatOverflow = errors.New("We cannot handle natural numbers greater than 4294967295.")

	// ErrInvalidDigit is returned for a literal containing a non-digit byte.
	ErrInvalidDigit = errors.New("invalid digit in natural number")
)

// ParseNat converts a decimal digit sequence to its value.
//
// The overflow test runs before each digit is accumulated: the literal is
// rejected as soon as the value so far is above natLimit, or equal to it
// with a next digit above '5'.
func ParseNat(digits string) (uint32, error) {
	var s uint64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, c, i)
		}
		if s > natLimit || (s == natLimit && c > '5') {
			return 0, ErrNatOverflow
		}
		s = s*10 + uint64(c-'0')
	}
	return uint32(s), nil
}

// Hooks used by the fatal paths. Tests replace them.
var (
	fatalOutput io.Writer = os.Stdout
	exit                  = os.Exit
)

// fatal prints msg and terminates the process.
func fatal(msg string) {
	fmt.Fprintln(fatalOutput, msg)
	exit(1)
}

// BuildNat converts the first n bytes of digits to a natural number.
// The bytes must be ASCII digits, as the lexer guarantees for a number
// token. A literal that does not fit in 32 bits is a fatal error: the
// message is printed and the process exits. A non-digit byte is fatal too,
// with the ErrInvalidDigit message instead.
func BuildNat(digits string, n int) uint32 {
	v, err := ParseNat(prefix(digits, n))
	if err != nil {
		fatal(err.Error())
		return 0
	}
	return v
}

// NewStr returns a fresh copy of the first n bytes of s.
func NewStr(s string, n int) string {
	p := prefix(s, n)
	b := make([]byte, len(p), len(p)+1)
	copy(b, p)
	return string(b)
}

func prefix(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
