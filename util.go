package ed2curve

import (
	"github.com/AlexanderYastrebov/ed2curve/field"
)

// signMask selects the bit of a compressed Edwards point that carries the
// sign of x, and the unused top bit of a signature's S half.
const signMask = 0x80

func fieldElementFromBytes(x []byte) *field.Element {
	var buf [32]byte
	copy(buf[:], x)
	fe, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return fe
}

// clamp turns k into an X25519 scalar: a multiple of the cofactor 8
// with bit 254 set and bit 255 cleared.
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-5
func clamp(k *[32]byte) *[32]byte {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
	return k
}
