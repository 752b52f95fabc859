package idtheory

import "math/rand"

// NibbleSource yields random 4-bit values. Only the low four bits of each
// draw are used, so a zero draw contributes the digit 0.
type NibbleSource interface {
	Nibble() byte
}

// RandomNibbleSource draws from math/rand. It is not cryptographically
// strong and is safe for concurrent use.
type RandomNibbleSource struct{}

func (RandomNibbleSource) Nibble() byte {
	return byte(rand.Intn(16))
}

// nibbleReader adapts a NibbleSource to io.Reader, two nibbles per byte.
type nibbleReader struct {
	src NibbleSource
}

func (r nibbleReader) Read(p []byte) (int, error) {
	for i := range p {
		hi := r.src.Nibble() & 0x0f
		lo := r.src.Nibble() & 0x0f
		p[i] = hi<<4 | lo
	}
	return len(p), nil
}
