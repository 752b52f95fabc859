// Package basex converts byte slices to and from numerals written in an
// arbitrary alphabet ("base-x" encoding).
//
// Leading zero bytes are preserved as leading copies of the alphabet's first
// symbol (the leader), so Decode(Encode(b)) == b for every b.
package basex

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidAlphabet = errors.New("basex: invalid alphabet")
	ErrInvalidSymbol   = errors.New("basex: invalid symbol")
)

// Well-known alphabets.
const (
	Base2         = "01"
	Base16        = "0123456789abcdef"
	Base36        = "0123456789abcdefghijklmnopqrstuvwxyz"
	Base58Bitcoin = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	Base62        = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Encoding is a radix encoding over a fixed alphabet. It is immutable and safe
// for concurrent use.
type Encoding struct {
	alphabet string
	symbols  []rune
	index    map[rune]int64
	base     *big.Int
}

// NewEncoding validates alphabet and builds an Encoding for it.
//
// The alphabet must contain at least two symbols and no duplicates.
func NewEncoding(alphabet string) (*Encoding, error) {
	if !utf8.ValidString(alphabet) {
		return nil, fmt.Errorf("%w: not valid utf-8", ErrInvalidAlphabet)
	}
	symbols := []rune(alphabet)
	if len(symbols) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidAlphabet, len(symbols))
	}

	index := make(map[rune]int64, len(symbols))
	for i, r := range symbols {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: %q is ambiguous", ErrInvalidAlphabet, r)
		}
		index[r] = int64(i)
	}

	return &Encoding{
		alphabet: alphabet,
		symbols:  symbols,
		index:    index,
		base:     big.NewInt(int64(len(symbols))),
	}, nil
}

// MustNewEncoding is like NewEncoding but panics on an invalid alphabet.
func MustNewEncoding(alphabet string) *Encoding {
	enc, err := NewEncoding(alphabet)
	if err != nil {
		panic(err)
	}
	return enc
}

func (e *Encoding) Alphabet() string { return e.alphabet }

// Base returns the number of symbols in the alphabet.
func (e *Encoding) Base() int { return len(e.symbols) }

// Leader returns the alphabet's first symbol, which stands for zero.
func (e *Encoding) Leader() rune { return e.symbols[0] }

// Encode renders src as a big-endian numeral, most significant symbol first.
func (e *Encoding) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	num := new(big.Int).SetBytes(src[zeros:])
	mod := new(big.Int)

	var digits []rune
	for num.Sign() > 0 {
		num.DivMod(num, e.base, mod)
		digits = append(digits, e.symbols[mod.Int64()])
	}

	var sb strings.Builder
	sb.Grow(zeros + len(digits))
	for i := 0; i < zeros; i++ {
		sb.WriteRune(e.symbols[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteRune(digits[i])
	}
	return sb.String()
}

// Decode parses s as a numeral in the alphabet. Leading leader symbols decode
// to leading zero bytes.
func (e *Encoding) Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	leader := e.symbols[0]
	zeros := 0
	counting := true

	num := new(big.Int)
	digit := new(big.Int)
	pos := 0
	for _, r := range s {
		v, ok := e.index[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, r, pos)
		}
		pos++
		if counting && r == leader {
			zeros++
			continue
		}
		counting = false
		num.Mul(num, e.base)
		num.Add(num, digit.SetInt64(v))
	}

	body := num.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}

// Named maps short names to the well-known alphabets.
var Named = map[string]string{
	"base2":  Base2,
	"base16": Base16,
	"base36": Base36,
	"base58": Base58Bitcoin,
	"base62": Base62,
}
