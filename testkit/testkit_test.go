package testkit_test

import (
	"errors"
	"testing"
	"time"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/testkit"
)

func TestManualClock(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := testkit.NewManualClock(now)
	if !clock.Now().Equal(now) {
		t.Fatalf("expected %v, got %v", now, clock.Now())
	}
	if got := clock.Advance(time.Second); !got.Equal(now.Add(time.Second)) {
		t.Fatalf("Advance returned %v", got)
	}
	clock.Set(now)
	if !clock.Now().Equal(now) {
		t.Fatalf("Set did not apply, got %v", clock.Now())
	}
}

func TestManualNibbleSource(t *testing.T) {
	src := testkit.NewManualNibbleSource()
	src.QueueHex("fA")
	src.Queue(7)

	want := []byte{0xf, 0xa, 7, 0, 1, 2}
	for i, w := range want {
		if got := src.Nibble(); got != w {
			t.Fatalf("draw %d: got %d, want %d", i, got, w)
		}
	}
	if src.Drawn() != len(want) {
		t.Fatalf("expected %d draws, got %d", len(want), src.Drawn())
	}

	src.Reset()
	if src.Nibble() != 0 || src.Drawn() != 1 {
		t.Fatal("expected Reset to restart the counter")
	}
}

func TestManualNibbleSource_WrapsAt16(t *testing.T) {
	src := testkit.NewManualNibbleSource()
	for i := 0; i < 16; i++ {
		src.Nibble()
	}
	if got := src.Nibble(); got != 0 {
		t.Fatalf("expected counter to wrap to 0, got %d", got)
	}
}

func TestManualUUIDGenerator(t *testing.T) {
	gen := testkit.NewManualUUIDGenerator()
	gen.Queue("550e8400-e29b-41d4-a716-446655440000")
	boom := errors.New("boom")
	gen.Fail(boom)

	if _, err := gen.NewUUID(idtheory.UUIDv4); !errors.Is(err, boom) {
		t.Fatalf("expected queued error first, got %v", err)
	}
	if got, _ := gen.NewUUID(idtheory.UUIDv4); got != "550e8400-e29b-41d4-a716-446655440000" {
		t.Fatalf("expected queued uuid, got %q", got)
	}
	if got, _ := gen.NewUUID(idtheory.UUIDv1); got != "00000000-0000-1000-8000-000000000001" {
		t.Fatalf("unexpected sequential v1 uuid %q", got)
	}
	if got, _ := gen.NewUUID(9); got != "00000000-0000-4000-8000-000000000002" {
		t.Fatalf("unexpected sequential v4 uuid %q", got)
	}

	versions := gen.Versions()
	if len(versions) != 4 || versions[2] != idtheory.UUIDv1 || versions[3] != 9 {
		t.Fatalf("unexpected versions %v", versions)
	}

	gen.Reset()
	if got, _ := gen.NewUUID(idtheory.UUIDv4); got != "00000000-0000-4000-8000-000000000001" {
		t.Fatalf("expected counter reset, got %q", got)
	}
}

func TestEnvIdentifier(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 678*int(time.Millisecond), time.UTC)
	env := testkit.NewWithTime(now)

	id := env.Identifier(idtheory.WithMinLength(4)).GenerateBigInt()
	if id.Len() != 8 {
		t.Fatalf("expected 8 bytes, got %d", id.Len())
	}
	if env.Nibbles.Drawn() != 4 {
		t.Fatalf("expected 4 nibbles drawn, got %d", env.Nibbles.Drawn())
	}
	if len(env.Logger.Entries()) != 1 {
		t.Fatalf("expected generation to be logged, got %d entries", len(env.Logger.Entries()))
	}
}
