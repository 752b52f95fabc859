// Package idtheory holds an opaque binary identifier and converts it between
// raw bytes, hex, UUID form, arbitrary-alphabet strings and integers.
//
// Identifier is an immutable value. Every From* method returns a new
// Identifier that keeps the receiver's configuration (alphabet, minimum
// length, collaborators) and replaces only the bytes; the receiver is never
// modified, including on error.
package idtheory

import (
	"bytes"

	"github.com/theory-cloud/idtheory/pkg/basex"
	"github.com/theory-cloud/idtheory/pkg/logger"
	"github.com/theory-cloud/idtheory/pkg/observability"
)

// DefaultAlphabet is the legacy radix table. Its ordering (and the missing
// "U"/"u") is part of the encoding and must not be changed.
const DefaultAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTVWXYZabcdefghijklmnopqrstvwxyz"

var defaultCodec = &basex.Codec{}

// Identifier is a big-endian unsigned integer of arbitrary width held as bytes.
//
// The zero value is an empty identifier using the default alphabet and
// collaborators.
type Identifier struct {
	bytes     []byte
	alphabet  string
	minLength int

	clock   Clock
	nibbles NibbleSource
	uuids   UUIDGenerator
	codec   RadixCodec
	logger  observability.StructuredLogger
}

type Option func(*Identifier)

// New creates an Identifier from options.
func New(opts ...Option) Identifier {
	id := Identifier{
		bytes:    []byte{},
		alphabet: DefaultAlphabet,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&id)
	}
	return id
}

// WithBytes sets the initial bytes verbatim. Unlike FromBuffer, leading zero
// bytes are kept.
func WithBytes(b []byte) Option {
	return func(id *Identifier) {
		id.bytes = bytes.Clone(b)
		if id.bytes == nil {
			id.bytes = []byte{}
		}
	}
}

// WithAlphabet sets the default radix alphabet. An empty alphabet restores
// DefaultAlphabet. The alphabet is validated when first used.
func WithAlphabet(alphabet string) Option {
	return func(id *Identifier) {
		if alphabet == "" {
			alphabet = DefaultAlphabet
		}
		id.alphabet = alphabet
	}
}

// WithMinLength sets the default pad length for ToString. Negative values are
// treated as zero.
func WithMinLength(n int) Option {
	return func(id *Identifier) {
		id.minLength = max(n, 0)
	}
}

func WithClock(clock Clock) Option {
	return func(id *Identifier) {
		id.clock = clock
	}
}

func WithNibbleSource(src NibbleSource) Option {
	return func(id *Identifier) {
		id.nibbles = src
	}
}

func WithUUIDGenerator(gen UUIDGenerator) Option {
	return func(id *Identifier) {
		id.uuids = gen
	}
}

func WithRadixCodec(codec RadixCodec) Option {
	return func(id *Identifier) {
		id.codec = codec
	}
}

// WithLogger sets the logger used for generation events. Without it the
// global logger from pkg/logger is used.
func WithLogger(l observability.StructuredLogger) Option {
	return func(id *Identifier) {
		id.logger = l
	}
}

// Alphabet returns the configured default alphabet.
func (id Identifier) Alphabet() string {
	if id.alphabet == "" {
		return DefaultAlphabet
	}
	return id.alphabet
}

// MinLength returns the configured default pad length.
func (id Identifier) MinLength() int {
	return id.minLength
}

// Len returns the number of bytes held.
func (id Identifier) Len() int {
	return len(id.bytes)
}

// Equal reports whether both identifiers hold the same bytes. Configuration
// is not compared.
func (id Identifier) Equal(other Identifier) bool {
	return bytes.Equal(id.bytes, other.bytes)
}

// FromBuffer returns an Identifier holding b without its leading zero bytes.
//
// A buffer made only of zero bytes is kept whole, so an all-zero buffer
// round-trips unchanged.
func (id Identifier) FromBuffer(b []byte) Identifier {
	return id.withBytes(bytes.Clone(trimLeadingZeros(b)))
}

// ToBuffer returns a copy of the held bytes.
func (id Identifier) ToBuffer() []byte {
	out := make([]byte, len(id.bytes))
	copy(out, id.bytes)
	return out
}

// Bytes is an alias for ToBuffer.
func (id Identifier) Bytes() []byte {
	return id.ToBuffer()
}

func (id Identifier) withBytes(b []byte) Identifier {
	if b == nil {
		b = []byte{}
	}
	id.bytes = b
	return id
}

func trimLeadingZeros(b []byte) []byte {
	for i, v := range b {
		if v != 0 {
			return b[i:]
		}
	}
	return b
}

func (id Identifier) timeSource() Clock {
	if id.clock == nil {
		return RealClock{}
	}
	return id.clock
}

func (id Identifier) nibbleSource() NibbleSource {
	if id.nibbles == nil {
		return RandomNibbleSource{}
	}
	return id.nibbles
}

func (id Identifier) uuidGenerator() UUIDGenerator {
	if id.uuids == nil {
		return GoogleUUIDGenerator{}
	}
	return id.uuids
}

func (id Identifier) radixCodec() RadixCodec {
	if id.codec == nil {
		return defaultCodec
	}
	return id.codec
}

func (id Identifier) log() observability.StructuredLogger {
	if id.logger == nil {
		return logger.Logger()
	}
	return id.logger
}
