package ed2curve

import (
	"encoding/binary"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	k := [32]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	for i := 8; i < 32; i++ {
		k[i] = 0xff
	}

	clamp(&k)
	assert.Equal(t, byte(0xf8), k[0])
	assert.Equal(t, byte(0x7f), k[31])

	var z [32]byte
	clamp(&z)
	assert.Equal(t, byte(0), z[0])
	assert.Equal(t, byte(0x40), z[31])
}

func TestClampMatchesScalar(t *testing.T) {
	k := [32]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 0xff}

	want, err := edwards25519.NewScalar().SetBytesWithClamping(k[:])
	assert.NoError(t, err)

	got, err := edwards25519.NewScalar().SetBytesWithClamping(clamp(&k)[:])
	assert.NoError(t, err)

	assert.Equal(t, 1, want.Equal(got))
}

func TestFieldElementFromBytes(t *testing.T) {
	// Short inputs are zero-extended.
	assert.Equal(t, fieldElementFromBytes([]byte{1}).Bytes(), _1.Bytes())

	// The top bit is ignored.
	b := make([]byte, 32)
	b[0], b[31] = 1, 0x80
	assert.Equal(t, fieldElementFromBytes(b).Bytes(), _1.Bytes())
}

func scalarFromUint64(n uint64) *edwards25519.Scalar {
	var buf [64]byte
	binary.LittleEndian.PutUint64(buf[:], n)

	xs, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return xs
}
