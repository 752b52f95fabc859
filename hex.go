package idtheory

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// FromHex decodes a hex string. An odd-length string is read as if it had a
// leading '0'. Leading zero bytes are kept.
func (id Identifier) FromHex(s string) (Identifier, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, newError(CodeMalformedInput, fmt.Sprintf("decode hex %q", s), err)
	}
	return id.withBytes(b), nil
}

// ToHex renders the bytes as lower-case hex, two characters per byte.
func (id Identifier) ToHex() string {
	return hex.EncodeToString(id.bytes)
}

// FromUUID removes every '-' from s and decodes the rest as hex.
func (id Identifier) FromUUID(s string) (Identifier, error) {
	return id.FromHex(strings.ReplaceAll(s, "-", ""))
}

// ToUUID renders the bytes in 8-4-4-4-12 grouping.
//
// Values shorter than 16 bytes are left-padded with zeros. Longer values are
// not truncated: the last group absorbs the extra digits.
func (id Identifier) ToUUID() string {
	h := id.ToHex()
	if len(h) < 32 {
		h = strings.Repeat("0", 32-len(h)) + h
	}
	return strings.Join([]string{h[0:8], h[8:12], h[12:16], h[16:20], h[20:]}, "-")
}
