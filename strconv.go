package bignum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/avdva/bignum/internal/mathutil"
	"github.com/avdva/bignum/tier"
)

const (
	delim = '.'
)

var (
	// ErrEmpty is returned for a string without any number.
	ErrEmpty = errors.New("empty input")
	// ErrSyntax is returned for a string, that is not a "[sign]number[ label]" sequence.
	ErrSyntax = errors.New("invalid syntax")
)

// FormatError describes a string that could not be parsed into a Value.
type FormatError struct {
	// Input is the string being parsed.
	Input string
	// Pos is the 1-based byte position of the problem, or 0 if it does not apply.
	Pos int
	// Err is the cause: ErrEmpty, ErrSyntax, tier.ErrUnknownLabel, or a strconv error.
	Err error
}

func newFormatError(input string, pos int, err error) *FormatError {
	return &FormatError{Input: input, Pos: pos, Err: err}
}

func (fe *FormatError) Error() string {
	if fe.Pos > 0 {
		return fe.Err.Error() + fmt.Sprintf(" at pos %d", fe.Pos)
	}
	return fe.Err.Error()
}

func (fe *FormatError) Unwrap() error {
	return fe.Err
}

// FromString parses a string like "250.75 K" or "-123.45" into a value.
// The number uses '.' as a delimiter, and is optionally followed by a space and a tier label.
// The result is not normalized, so "1000 M" is kept as is.
// The returned error wraps a *FormatError.
func FromString(s string) (Value, error) {
	v, err := parse(s)
	if err != nil {
		return Zero, fmt.Errorf("parsing failed: %w", err)
	}
	return v, nil
}

// MustFromString is like FromString but panics if the string cannot be parsed.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the number in the shortest form that parses back to the same mantissa,
// followed by a space and the tier label, unless the tier is None.
// 1 is formatted as "1", not "1.0". No thousands separators are added.
func (v Value) String() string {
	var builder strings.Builder
	v.toStringsBuilder(&builder)
	return builder.String()
}

func (v Value) toStringsBuilder(builder *strings.Builder) {
	builder.WriteString(mathutil.FormatFloat(v.mant))
	if label := v.tier.Label(); label != "" {
		builder.WriteRune(' ')
		builder.WriteString(label)
	}
}

// MarshalText returns the same text as String.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the text with FromString.
func (v *Value) UnmarshalText(data []byte) error {
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

func parse(s string) (Value, error) {
	pos := skipSpaces(s, 0)
	if pos == len(s) {
		return Zero, newFormatError(s, 0, ErrEmpty)
	}
	end, err := scanNumber(s, pos)
	if err != nil {
		return Zero, err
	}
	mant, err := strconv.ParseFloat(s[pos:end], 64)
	if err != nil {
		return Zero, newFormatError(s, pos+1, err)
	}
	if pos = skipSpaces(s, end); pos == len(s) {
		return FromMantAndTier(mant, tier.None), nil
	}
	labelEnd := scanToken(s, pos)
	t, err := tier.Parse(s[pos:labelEnd])
	if err != nil {
		return Zero, newFormatError(s, pos+1, err)
	}
	if rest := skipSpaces(s, labelEnd); rest < len(s) {
		err := fmt.Errorf("%w: unexpected token %q", ErrSyntax, s[rest:scanToken(s, rest)])
		return Zero, newFormatError(s, rest+1, err)
	}
	return FromMantAndTier(mant, t), nil
}

// scanNumber checks that s[pos:] starts with an optionally signed decimal number,
// and returns the position right after it.
func scanNumber(s string, pos int) (end int, err error) {
	i := pos
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	var digits int
	delimPos := -1
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case '0' <= r && r <= '9':
			digits++
		case r == delim:
			if delimPos >= 0 {
				return 0, newFormatError(s, i+1, fmt.Errorf("%w: unexpected delimiter", ErrSyntax))
			}
			delimPos = i
		case unicode.IsSpace(r):
			return checkDigits(s, pos, i, digits)
		default:
			return 0, newFormatError(s, i+1, fmt.Errorf("%w: unexpected symbol %q", ErrSyntax, r))
		}
		i += size
	}
	return checkDigits(s, pos, i, digits)
}

func checkDigits(s string, start, end, digits int) (int, error) {
	if digits == 0 {
		return 0, newFormatError(s, start+1, fmt.Errorf("%w: no digits", ErrSyntax))
	}
	return end, nil
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

func scanToken(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}
