package idtheory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/testkit"
)

// 2025-01-02T03:04:05.678Z: 0x6776_0225 seconds, 0x02a6 milliseconds.
var fixedNow = time.Date(2025, 1, 2, 3, 4, 5, 678*int(time.Millisecond), time.UTC)

func TestGenerateObjectID(t *testing.T) {
	env := testkit.NewWithTime(fixedNow)
	id := env.Identifier().GenerateObjectID()

	assert.Equal(t, 12, id.Len())
	assert.Equal(t, "6776022502a6"+"0123456789", id.ToHex())
	assert.Equal(t, 10, env.Nibbles.Drawn())
}

func TestGenerateObjectID_ZeroDrawsAreDigits(t *testing.T) {
	env := testkit.NewWithTime(fixedNow)
	env.Nibbles.Queue(0, 0, 0, 0, 0, 0, 0, 0, 0, 0)

	id := env.Identifier().GenerateObjectID()
	assert.Equal(t, "6776022502a60000000000", id.ToHex())
	assert.Equal(t, 12, id.Len(), "zero draws are kept, never dropped")
}

func TestGenerateObjectID_MasksNibbles(t *testing.T) {
	env := testkit.NewWithTime(fixedNow)
	env.Nibbles.Queue(0x1f, 0xf2)

	id := env.Identifier().GenerateObjectID()
	assert.Equal(t, "f2", id.ToHex()[12:14])
}

func TestGenerateObjectID_TruncatesSecondsTo32Bits(t *testing.T) {
	env := testkit.NewWithTime(time.Unix(1<<32+5, 7*int64(time.Millisecond)))
	id := env.Identifier().GenerateObjectID()
	assert.Equal(t, "000000050007", id.ToHex()[:12])

	env.Clock.Set(time.Unix(-10, 0))
	id = env.Identifier().GenerateObjectID()
	assert.Equal(t, "000000000000", id.ToHex()[:12], "pre-epoch clocks clamp to zero")
}

func TestGenerateBigInt(t *testing.T) {
	env := testkit.NewWithTime(fixedNow)
	env.Nibbles.QueueHex("beef")

	id := env.Identifier().GenerateBigInt()
	assert.Equal(t, 8, id.Len())
	assert.Equal(t, "6776022502a6beef", id.ToHex())

	n, err := id.ToUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x6776022502a6beef), n)
}

func TestGenerateBigInt_AlwaysEightBytes(t *testing.T) {
	id := idtheory.New()
	for i := 0; i < 100; i++ {
		assert.Len(t, id.GenerateBigInt().ToHex(), 16)
	}
	assert.Equal(t, 12, id.GenerateObjectID().Len())
}

func TestGenerateUUID(t *testing.T) {
	env := testkit.New()
	env.UUIDs.Queue("550e8400-e29b-41d4-a716-446655440000")

	id, err := env.Identifier().GenerateUUID(idtheory.UUIDv4)
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.ToUUID())

	v1, err := env.Identifier().GenerateUUID(idtheory.UUIDv1)
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-1000-8000-000000000001", v1.ToUUID())

	_, err = env.Identifier().GenerateUUID(7)
	require.NoError(t, err)
	assert.Equal(t, []idtheory.UUIDVersion{idtheory.UUIDv4, idtheory.UUIDv1, idtheory.UUIDv4}, env.UUIDs.Versions())
}

func TestGenerateUUID_PropagatesGeneratorFailure(t *testing.T) {
	env := testkit.New()
	boom := errors.New("entropy exhausted")
	env.UUIDs.Fail(boom)

	base := env.Identifier(idtheory.WithBytes([]byte{0x01}))
	got, err := base.GenerateUUID(idtheory.UUIDv4)
	require.ErrorIs(t, err, idtheory.ErrGeneratorFailed)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "01", got.ToHex())

	errs := env.Logger.EntriesAt("error")
	require.Len(t, errs, 1)
	assert.Equal(t, "uuid generation failed", errs[0].Message)
	assert.Equal(t, "entropy exhausted", errs[0].Fields["error"])
}

func TestGenerateUUID_RejectsMalformedGeneratorOutput(t *testing.T) {
	env := testkit.New()
	env.UUIDs.Queue("not-a-uuid")

	_, err := env.Identifier().GenerateUUID(idtheory.UUIDv4)
	require.ErrorIs(t, err, idtheory.ErrMalformedInput)
}

func TestGenerateUUID_DefaultGenerator(t *testing.T) {
	id, err := idtheory.New().GenerateUUID(idtheory.UUIDv4)
	require.NoError(t, err)
	assert.Equal(t, 16, id.Len())
	assert.Equal(t, byte(0x40), id.ToBuffer()[6]&0xf0)

	v1, err := idtheory.New().GenerateUUID(idtheory.UUIDv1)
	require.NoError(t, err)
	assert.Equal(t, byte(0x10), v1.ToBuffer()[6]&0xf0)
}

func TestGenerateULID(t *testing.T) {
	env := testkit.NewWithTime(fixedNow)

	id, err := env.Identifier().GenerateULID()
	require.NoError(t, err)
	assert.Equal(t, 16, id.Len())
	assert.Equal(t, "019424f8632e0123456789abcdef0123", id.ToHex())
	assert.Equal(t, 20, env.Nibbles.Drawn())

	var u ulid.ULID
	copy(u[:], id.ToBuffer())
	assert.Equal(t, uint64(fixedNow.UnixMilli()), u.Time())
}

func TestGenerate_LogsAtDebug(t *testing.T) {
	env := testkit.NewWithTime(fixedNow)
	id := env.Identifier()

	id.GenerateObjectID()
	id.GenerateBigInt()
	_, err := id.GenerateUUID(idtheory.UUIDv4)
	require.NoError(t, err)
	_, err = id.GenerateULID()
	require.NoError(t, err)

	entries := env.Logger.EntriesAt("debug")
	require.Len(t, entries, 4)
	kinds := []any{}
	for _, e := range entries {
		kinds = append(kinds, e.Fields["kind"])
	}
	assert.Equal(t, []any{"objectid", "bigint", "uuid", "ulid"}, kinds)
	assert.Equal(t, "6776022502a60123456789", entries[0].Fields["hex"])
}
