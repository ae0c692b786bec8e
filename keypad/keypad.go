// Package keypad maps key names to calculator tokens.
// Tokens are only produced here, nothing evaluates them yet.
package keypad

import "strings"

// Token is a calculator input produced by a key press.
type Token string

const (
	Digit0 Token = "0"
	Digit1 Token = "1"
	Digit2 Token = "2"
	Digit3 Token = "3"
	Digit4 Token = "4"
	Digit5 Token = "5"
	Digit6 Token = "6"
	Digit7 Token = "7"
	Digit8 Token = "8"
	Digit9 Token = "9"

	Dot      Token = "."
	Plus     Token = "+"
	Minus    Token = "-"
	Multiply Token = "*"
	Divide   Token = "/"

	Enter Token = "Enter"
	Clear Token = "Clear"
	Swap  Token = "Swap"
)

var keys = map[string]Token{
	"Decimal":  Dot,
	"Add":      Plus,
	"Subtract": Minus,
	"Multiply": Multiply,
	"Divide":   Divide,
	"Enter":    Enter,
	"C":        Clear,
	"S":        Swap,
}

func init() {
	digits := []Token{Digit0, Digit1, Digit2, Digit3, Digit4, Digit5, Digit6, Digit7, Digit8, Digit9}
	for i, d := range digits {
		keys["D"+string(rune('0'+i))] = d
		keys["NumPad"+string(rune('0'+i))] = d
	}
}

// Lookup returns the token for a key name, like "D7", "NumPad7", "Add", or "C".
// Key names are case-sensitive. Keys without a token report false.
func Lookup(key string) (Token, bool) {
	t, found := keys[key]
	return t, found
}

// Keys returns all the key names that produce tokens, in no particular order.
func Keys() []string {
	result := make([]string, 0, len(keys))
	for k := range keys {
		result = append(result, k)
	}
	return result
}

// IsDigit reports whether the token is one of "0"-"9".
func (t Token) IsDigit() bool {
	return len(t) == 1 && '0' <= t[0] && t[0] <= '9'
}

// IsOperator reports whether the token is one of "+", "-", "*", "/".
func (t Token) IsOperator() bool {
	return len(t) == 1 && strings.ContainsRune("+-*/", rune(t[0]))
}

// IsCommand reports whether the token is Enter, Clear, or Swap.
func (t Token) IsCommand() bool {
	return t == Enter || t == Clear || t == Swap
}
