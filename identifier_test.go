package idtheory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/idtheory"
)

func TestNew_Defaults(t *testing.T) {
	id := idtheory.New()
	assert.Equal(t, idtheory.DefaultAlphabet, id.Alphabet())
	assert.Equal(t, 0, id.MinLength())
	assert.Equal(t, 0, id.Len())
	assert.Equal(t, []byte{}, id.ToBuffer())
	assert.Equal(t, "", id.ToHex())
}

func TestNew_Options(t *testing.T) {
	id := idtheory.New(
		idtheory.WithBytes([]byte{0x00, 0x01}),
		idtheory.WithAlphabet("01"),
		idtheory.WithMinLength(12),
		nil,
	)
	assert.Equal(t, []byte{0x00, 0x01}, id.ToBuffer(), "WithBytes must not strip leading zeros")
	assert.Equal(t, "01", id.Alphabet())
	assert.Equal(t, 12, id.MinLength())

	reset := idtheory.New(idtheory.WithAlphabet(""), idtheory.WithMinLength(-3))
	assert.Equal(t, idtheory.DefaultAlphabet, reset.Alphabet())
	assert.Equal(t, 0, reset.MinLength())
}

func TestZeroValueIsUsable(t *testing.T) {
	var id idtheory.Identifier
	assert.Equal(t, idtheory.DefaultAlphabet, id.Alphabet())

	next, err := id.FromHex("ff")
	require.NoError(t, err)
	s, err := next.ToString()
	require.NoError(t, err)
	assert.Equal(t, "4F", s)
	assert.Len(t, id.GenerateObjectID().ToBuffer(), 12)
}

func TestDefaultAlphabetIsLegacyTable(t *testing.T) {
	assert.Equal(t, "0123456789ABCDEFGHIJKLMNOPQRSTVWXYZabcdefghijklmnopqrstvwxyz", idtheory.DefaultAlphabet)
}

func TestFromBuffer_StripsLeadingZeros(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"nil", nil, []byte{}},
		{"no zeros", []byte{0x01, 0x02}, []byte{0x01, 0x02}},
		{"leading zeros", []byte{0x00, 0x00, 0x01, 0x02}, []byte{0x01, 0x02}},
		{"inner zeros kept", []byte{0x00, 0x10, 0x00, 0x01}, []byte{0x10, 0x00, 0x01}},
		{"trailing zeros kept", []byte{0x01, 0x00}, []byte{0x01, 0x00}},
		{"single zero kept", []byte{0x00}, []byte{0x00}},
		{"all zero kept whole", []byte{0x00, 0x00, 0x00}, []byte{0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idtheory.New().FromBuffer(tt.in).ToBuffer()
			assert.Equal(t, tt.want, got)
		})
	}

	a := idtheory.New().FromBuffer([]byte{0x00, 0x00, 0x01, 0x02})
	b := idtheory.New().FromBuffer([]byte{0x01, 0x02})
	assert.True(t, a.Equal(b))
}

func TestFromBuffer_CopiesInput(t *testing.T) {
	in := []byte{0x01, 0x02}
	id := idtheory.New().FromBuffer(in)
	in[0] = 0xff
	assert.Equal(t, []byte{0x01, 0x02}, id.ToBuffer())

	out := id.ToBuffer()
	out[0] = 0xee
	assert.Equal(t, []byte{0x01, 0x02}, id.Bytes())
}

func TestFromMethodsDoNotMutateReceiver(t *testing.T) {
	base := idtheory.New(idtheory.WithBytes([]byte{0xab}), idtheory.WithMinLength(5))

	next := base.FromBuffer([]byte{0xcd})
	assert.Equal(t, "ab", base.ToHex())
	assert.Equal(t, "cd", next.ToHex())
	assert.Equal(t, 5, next.MinLength(), "configuration carries over")

	failed, err := base.FromHex("zz")
	require.Error(t, err)
	assert.Equal(t, "ab", failed.ToHex(), "failed conversion returns the receiver unchanged")
	assert.Equal(t, "ab", base.ToHex())
}

func TestEqual(t *testing.T) {
	a := idtheory.New(idtheory.WithBytes([]byte{1, 2}), idtheory.WithAlphabet("01"))
	b := idtheory.New(idtheory.WithBytes([]byte{1, 2}))
	c := idtheory.New(idtheory.WithBytes([]byte{0, 1, 2}))
	assert.True(t, a.Equal(b), "equality ignores configuration")
	assert.False(t, a.Equal(c), "equality is byte-wise")
}
