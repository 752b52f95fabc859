package idtheory

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// FromInt stores n via its hex form. Negative values are rejected.
func (id Identifier) FromInt(n int64) (Identifier, error) {
	if n < 0 {
		return id, newError(CodeMalformedInput, fmt.Sprintf("negative integer %d", n), nil)
	}
	return id.FromHex(strconv.FormatInt(n, 16))
}

// FromUint64 stores n in the minimal number of bytes (one byte for zero).
func (id Identifier) FromUint64(n uint64) Identifier {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	b := bytes.TrimLeft(buf[:], "\x00")
	if len(b) == 0 {
		b = buf[7:]
	}
	return id.withBytes(bytes.Clone(b))
}

// ToInt returns the value as an int64, failing with ErrOverflow when it does
// not fit. An empty identifier is zero.
func (id Identifier) ToInt() (int64, error) {
	u, err := id.ToUint64()
	if err != nil {
		return 0, err
	}
	if u > math.MaxInt64 {
		return 0, newError(CodeOverflow, fmt.Sprintf("0x%s exceeds int64", id.ToHex()), nil)
	}
	return int64(u), nil
}

// ToUint64 returns the value as a uint64, failing with ErrOverflow when it
// needs more than 64 bits. Leading zero bytes do not count toward the width.
func (id Identifier) ToUint64() (uint64, error) {
	significant := bytes.TrimLeft(id.bytes, "\x00")
	if len(significant) > 8 {
		return 0, newError(CodeOverflow, fmt.Sprintf("0x%s exceeds 64 bits", id.ToHex()), nil)
	}
	var u uint64
	for _, b := range significant {
		u = u<<8 | uint64(b)
	}
	return u, nil
}

// FromBigInt stores n via its hex form. Nil and negative values are rejected.
func (id Identifier) FromBigInt(n *big.Int) (Identifier, error) {
	if n == nil {
		return id, newError(CodeMalformedInput, "nil big integer", nil)
	}
	if n.Sign() < 0 {
		return id, newError(CodeMalformedInput, "negative big integer "+n.String(), nil)
	}
	return id.FromHex(n.Text(16))
}

// ToBigInt returns the value as an arbitrary-precision integer.
func (id Identifier) ToBigInt() *big.Int {
	return new(big.Int).SetBytes(id.bytes)
}
