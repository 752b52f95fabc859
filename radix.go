package idtheory

import (
	"strings"
	"unicode/utf8"
)

// RadixCodec converts between bytes and numerals in a caller-chosen alphabet.
// pkg/basex.Codec is the default implementation.
type RadixCodec interface {
	Encode(alphabet string, src []byte) (string, error)
	Decode(alphabet, s string) ([]byte, error)
}

type formatOptions struct {
	alphabet  string
	minLength int
}

// FormatOption overrides an Identifier's radix defaults for a single call.
type FormatOption func(*formatOptions)

// PadTo sets the minimum rendered length in symbols.
func PadTo(n int) FormatOption {
	return func(o *formatOptions) {
		o.minLength = max(n, 0)
	}
}

// InAlphabet selects the alphabet. An empty alphabet keeps the default.
func InAlphabet(alphabet string) FormatOption {
	return func(o *formatOptions) {
		if alphabet != "" {
			o.alphabet = alphabet
		}
	}
}

func (id Identifier) formatOptions(opts []FormatOption) formatOptions {
	out := formatOptions{
		alphabet:  id.Alphabet(),
		minLength: id.minLength,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&out)
	}
	return out
}

// FromString decodes s as a numeral in the configured alphabet (or the one
// given with InAlphabet) and normalizes the result like FromBuffer.
func (id Identifier) FromString(s string, opts ...FormatOption) (Identifier, error) {
	o := id.formatOptions(opts)
	b, err := id.radixCodec().Decode(o.alphabet, s)
	if err != nil {
		return id, codecError("decode radix string", err)
	}
	return id.FromBuffer(b), nil
}

// ToString encodes the bytes as a numeral and left-pads it with the
// alphabet's first symbol up to the minimum length.
func (id Identifier) ToString(opts ...FormatOption) (string, error) {
	o := id.formatOptions(opts)
	s, err := id.radixCodec().Encode(o.alphabet, id.bytes)
	if err != nil {
		return "", codecError("encode radix string", err)
	}
	return padLeft(s, o.minLength, o.alphabet), nil
}

// String returns ToString with the configured defaults, or ToHex when the
// configured alphabet is unusable.
func (id Identifier) String() string {
	s, err := id.ToString()
	if err != nil {
		return id.ToHex()
	}
	return s
}

func (id Identifier) MarshalText() ([]byte, error) {
	s, err := id.ToString()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := id.FromString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func padLeft(s string, minLength int, alphabet string) string {
	n := utf8.RuneCountInString(s)
	if n >= minLength {
		return s
	}
	pad, _ := utf8.DecodeRuneInString(alphabet)
	return strings.Repeat(string(pad), minLength-n) + s
}
