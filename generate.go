package idtheory

import (
	"encoding/binary"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	objectIDRandomNibbles = 10
	bigIntRandomNibbles   = 4
)

// GenerateObjectID returns a 12-byte ObjectId-style identifier: seconds since
// the epoch (low 32 bits), the millisecond within that second (2 bytes), then
// 5 random bytes.
func (id Identifier) GenerateObjectID() Identifier {
	out := id.withBytes(id.appendNibbles(id.timePrefix(12), objectIDRandomNibbles))
	id.logGenerated("objectid", out)
	return out
}

// GenerateBigInt returns an 8-byte identifier with the same time prefix as
// GenerateObjectID followed by 2 random bytes.
func (id Identifier) GenerateBigInt() Identifier {
	out := id.withBytes(id.appendNibbles(id.timePrefix(8), bigIntRandomNibbles))
	id.logGenerated("bigint", out)
	return out
}

// GenerateUUID asks the UUID generator for a v1 or v4 UUID. Other versions
// are treated as v4.
func (id Identifier) GenerateUUID(version UUIDVersion) (Identifier, error) {
	version = version.Normalize()
	s, err := id.uuidGenerator().NewUUID(version)
	if err != nil {
		id.log().Error("uuid generation failed", map[string]any{
			"version": int(version),
			"error":   err.Error(),
		})
		return id, newError(CodeGeneratorFailed, "generate uuid", err)
	}
	out, err := id.FromUUID(s)
	if err != nil {
		return id, err
	}
	id.logGenerated("uuid", out)
	return out, nil
}

// GenerateULID returns a 16-byte ULID timestamped with the clock and filled
// from the nibble source.
func (id Identifier) GenerateULID() (Identifier, error) {
	now := id.timeSource().Now()
	if now.Before(time.UnixMilli(0)) {
		now = time.UnixMilli(0)
	}
	u, err := ulid.New(ulid.Timestamp(now), nibbleReader{src: id.nibbleSource()})
	if err != nil {
		return id, newError(CodeGeneratorFailed, "generate ulid", err)
	}
	out := id.withBytes(append([]byte(nil), u[:]...))
	id.logGenerated("ulid", out)
	return out, nil
}

// timePrefix returns 6 bytes (seconds, then milliseconds) with room for size.
func (id Identifier) timePrefix(size int) []byte {
	ms := id.timeSource().Now().UnixMilli()
	if ms < 0 {
		ms = 0
	}
	out := make([]byte, 6, size)
	binary.BigEndian.PutUint32(out[0:4], uint32(ms/1000))
	binary.BigEndian.PutUint16(out[4:6], uint16(ms%1000))
	return out
}

func (id Identifier) appendNibbles(dst []byte, nibbles int) []byte {
	src := id.nibbleSource()
	for i := 0; i < nibbles; i += 2 {
		hi := src.Nibble() & 0x0f
		lo := src.Nibble() & 0x0f
		dst = append(dst, hi<<4|lo)
	}
	return dst
}

func (id Identifier) logGenerated(kind string, out Identifier) {
	id.log().Debug("generated identifier", map[string]any{
		"kind": kind,
		"hex":  out.ToHex(),
	})
}
