// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the NOTICE file.

package field

import (
	"crypto/subtle"
	"errors"
)

// Element represents an element of the field GF(2^255-19).
//
// This type works similarly to [filippo.io/edwards25519/field.Element],
// and all arguments and receivers are allowed to alias. Unlike that type,
// Add and Subtract do not carry: see [Element.Add] for the resulting limit.
//
// The zero value is a valid zero element.
type Element struct {
	// An element t represents the integer
	//     t.l[0] + t.l[1]*2^26 + t.l[2]*2^51 + t.l[3]*2^77 + t.l[4]*2^102 +
	//     t.l[5]*2^128 + t.l[6]*2^153 + t.l[7]*2^179 + t.l[8]*2^204 + t.l[9]*2^230
	//
	// Limbs are signed. After Multiply, Square or SetBytes even limbs are
	// bounded by about 2^25 and odd limbs by about 2^24 in absolute value.
	// Add and Subtract do not carry, so their outputs may be a few bits
	// larger; Multiply and Square accept inputs up to 2^27 per limb.
	l [10]int32
}

var feZero = &Element{}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = &Element{l: [10]int32{1}}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

func load3(in []byte) int64 {
	return int64(in[0]) | int64(in[1])<<8 | int64(in[2])<<16
}

func load4(in []byte) int64 {
	return int64(in[0]) | int64(in[1])<<8 | int64(in[2])<<16 | int64(in[3])<<24
}

// SetBytes sets v to x, where x is a 32-byte little-endian encoding. If x is
// not of the right length, SetBytes returns nil and an error, and the
// receiver is unchanged.
//
// Consistent with RFC 7748, the most significant bit (the high bit of the
// last byte) is ignored, and non-canonical values (2^255-19 through 2^255-1)
// are accepted.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid field element input size")
	}

	return v.carry(
		load4(x[0:]),
		load3(x[4:])<<6,
		load3(x[7:])<<5,
		load3(x[10:])<<3,
		load3(x[13:])<<2,
		load4(x[16:]),
		load3(x[20:])<<7,
		load3(x[23:])<<5,
		load3(x[26:])<<4,
		(load3(x[29:])&(1<<23-1))<<2,
	), nil
}

// carry sets v = h0 + h1*2^26 + h2*2^51 + ... + h9*2^230 with the limbs
// brought back into their reduced bounds, and returns v.
//
// Carries are rounded, so limbs come out signed. The top carry is folded
// into h0 with a factor of 19 because 2^255 = 19 mod p.
func (v *Element) carry(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 int64) *Element {
	var c0, c1, c2, c3, c4, c5, c6, c7, c8, c9 int64

	c0 = (h0 + 1<<25) >> 26
	h1 += c0
	h0 -= c0 << 26
	c4 = (h4 + 1<<25) >> 26
	h5 += c4
	h4 -= c4 << 26

	c1 = (h1 + 1<<24) >> 25
	h2 += c1
	h1 -= c1 << 25
	c5 = (h5 + 1<<24) >> 25
	h6 += c5
	h5 -= c5 << 25

	c2 = (h2 + 1<<25) >> 26
	h3 += c2
	h2 -= c2 << 26
	c6 = (h6 + 1<<25) >> 26
	h7 += c6
	h6 -= c6 << 26

	c3 = (h3 + 1<<24) >> 25
	h4 += c3
	h3 -= c3 << 25
	c7 = (h7 + 1<<24) >> 25
	h8 += c7
	h7 -= c7 << 25

	c4 = (h4 + 1<<25) >> 26
	h5 += c4
	h4 -= c4 << 26
	c8 = (h8 + 1<<25) >> 26
	h9 += c8
	h8 -= c8 << 26

	c9 = (h9 + 1<<24) >> 25
	h0 += c9 * 19
	h9 -= c9 << 25

	c0 = (h0 + 1<<25) >> 26
	h1 += c0
	h0 -= c0 << 26

	v.l = [10]int32{
		int32(h0), int32(h1), int32(h2), int32(h3), int32(h4),
		int32(h5), int32(h6), int32(h7), int32(h8), int32(h9),
	}
	return v
}

// reduce brings the limbs of v back into their reduced bounds, and returns v.
func (v *Element) reduce() *Element {
	return v.carry(
		int64(v.l[0]), int64(v.l[1]), int64(v.l[2]), int64(v.l[3]), int64(v.l[4]),
		int64(v.l[5]), int64(v.l[6]), int64(v.l[7]), int64(v.l[8]), int64(v.l[9]),
	)
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var out [32]byte
	return v.bytes(&out)
}

// FillBytes sets buf the canonical 32-byte little-endian encoding of v, and returns buf.
// If buf is shorter than 32 bytes, FillBytes will panic.
func (v *Element) FillBytes(buf []byte) []byte {
	return v.bytes((*[32]byte)(buf[:32]))
}

func (v *Element) bytes(out *[32]byte) []byte {
	t := *v
	t.reduce()
	h := &t.l

	// Compute q = floor(h / p) in {0, 1} without branches: h + 19 overflows
	// 2^255 exactly when h >= p.
	q := (19*h[9] + 1<<24) >> 25
	q = (h[0] + q) >> 26
	q = (h[1] + q) >> 25
	q = (h[2] + q) >> 26
	q = (h[3] + q) >> 25
	q = (h[4] + q) >> 26
	q = (h[5] + q) >> 25
	q = (h[6] + q) >> 26
	q = (h[7] + q) >> 25
	q = (h[8] + q) >> 26
	q = (h[9] + q) >> 25

	// h - q*p = h + 19*q - q*2^255; the last term is dropped with the top carry.
	h[0] += 19 * q

	for i := 0; i < 9; i++ {
		shift := 26 - uint(i&1)
		c := h[i] >> shift
		h[i+1] += c
		h[i] -= c << shift
	}
	h[9] -= (h[9] >> 25) << 25

	out[0] = byte(h[0])
	out[1] = byte(h[0] >> 8)
	out[2] = byte(h[0] >> 16)
	out[3] = byte(h[0]>>24 | h[1]<<2)
	out[4] = byte(h[1] >> 6)
	out[5] = byte(h[1] >> 14)
	out[6] = byte(h[1]>>22 | h[2]<<3)
	out[7] = byte(h[2] >> 5)
	out[8] = byte(h[2] >> 13)
	out[9] = byte(h[2]>>21 | h[3]<<5)
	out[10] = byte(h[3] >> 3)
	out[11] = byte(h[3] >> 11)
	out[12] = byte(h[3]>>19 | h[4]<<6)
	out[13] = byte(h[4] >> 2)
	out[14] = byte(h[4] >> 10)
	out[15] = byte(h[4] >> 18)
	out[16] = byte(h[5])
	out[17] = byte(h[5] >> 8)
	out[18] = byte(h[5] >> 16)
	out[19] = byte(h[5]>>24 | h[6]<<1)
	out[20] = byte(h[6] >> 7)
	out[21] = byte(h[6] >> 15)
	out[22] = byte(h[6]>>23 | h[7]<<3)
	out[23] = byte(h[7] >> 5)
	out[24] = byte(h[7] >> 13)
	out[25] = byte(h[7]>>21 | h[8]<<4)
	out[26] = byte(h[8] >> 4)
	out[27] = byte(h[8] >> 12)
	out[28] = byte(h[8]>>20 | h[9]<<6)
	out[29] = byte(h[9] >> 2)
	out[30] = byte(h[9] >> 10)
	out[31] = byte(h[9] >> 18)

	return out[:]
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	var bu, bv [32]byte
	return subtle.ConstantTimeCompare(u.bytes(&bu), v.bytes(&bv))
}

// mask32Bits returns 0xffffffff if cond is 1, and 0 otherwise.
func mask32Bits(cond int) int32 { return -int32(cond) }

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask32Bits(cond)
	for i := range v.l {
		v.l[i] = (m & a.l[i]) | (^m & b.l[i])
	}
	return v
}

// Add sets v = a + b, and returns v.
//
// The limbs are added without carrying, so the result of summing more than
// four outputs of Multiply, Square, SetBytes, Zero or One (counting a
// subtracted element as one) must not be passed to Multiply or Square.
// Bytes, Equal and IsNegative accept any such sum.
func (v *Element) Add(a, b *Element) *Element {
	for i := range v.l {
		v.l[i] = a.l[i] + b.l[i]
	}
	return v
}

// Subtract sets v = a - b, and returns v.
//
// The limbs are subtracted without carrying, under the same limit as [Element.Add].
func (v *Element) Subtract(a, b *Element) *Element {
	for i := range v.l {
		v.l[i] = a.l[i] - b.l[i]
	}
	return v
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// IsNegative returns 1 if v is negative, and 0 otherwise.
func (v *Element) IsNegative() int {
	var b [32]byte
	return int(v.bytes(&b)[0] & 1)
}

// Multiply sets v = x * y, and returns v.
//
// Each limb of x and y must be below 2^27 in absolute value, which holds for
// sums of up to four carried elements. The result is carried.
func (v *Element) Multiply(x, y *Element) *Element {
	a0 := int64(x.l[0])
	a1 := int64(x.l[1])
	a2 := int64(x.l[2])
	a3 := int64(x.l[3])
	a4 := int64(x.l[4])
	a5 := int64(x.l[5])
	a6 := int64(x.l[6])
	a7 := int64(x.l[7])
	a8 := int64(x.l[8])
	a9 := int64(x.l[9])

	// Odd limbs carry half a bit less than their position suggests, so a
	// product of two odd limbs lands on an even column doubled.
	a1_2 := 2 * a1
	a3_2 := 2 * a3
	a5_2 := 2 * a5
	a7_2 := 2 * a7
	a9_2 := 2 * a9

	b0 := int64(y.l[0])
	b1 := int64(y.l[1])
	b2 := int64(y.l[2])
	b3 := int64(y.l[3])
	b4 := int64(y.l[4])
	b5 := int64(y.l[5])
	b6 := int64(y.l[6])
	b7 := int64(y.l[7])
	b8 := int64(y.l[8])
	b9 := int64(y.l[9])

	// Columns 10 and above wrap around to column 0 times 19.
	b1_19 := 19 * b1
	b2_19 := 19 * b2
	b3_19 := 19 * b3
	b4_19 := 19 * b4
	b5_19 := 19 * b5
	b6_19 := 19 * b6
	b7_19 := 19 * b7
	b8_19 := 19 * b8
	b9_19 := 19 * b9

	h0 := a0*b0 + a1_2*b9_19 + a2*b8_19 + a3_2*b7_19 + a4*b6_19 + a5_2*b5_19 + a6*b4_19 + a7_2*b3_19 + a8*b2_19 + a9_2*b1_19
	h1 := a0*b1 + a1*b0 + a2*b9_19 + a3*b8_19 + a4*b7_19 + a5*b6_19 + a6*b5_19 + a7*b4_19 + a8*b3_19 + a9*b2_19
	h2 := a0*b2 + a1_2*b1 + a2*b0 + a3_2*b9_19 + a4*b8_19 + a5_2*b7_19 + a6*b6_19 + a7_2*b5_19 + a8*b4_19 + a9_2*b3_19
	h3 := a0*b3 + a1*b2 + a2*b1 + a3*b0 + a4*b9_19 + a5*b8_19 + a6*b7_19 + a7*b6_19 + a8*b5_19 + a9*b4_19
	h4 := a0*b4 + a1_2*b3 + a2*b2 + a3_2*b1 + a4*b0 + a5_2*b9_19 + a6*b8_19 + a7_2*b7_19 + a8*b6_19 + a9_2*b5_19
	h5 := a0*b5 + a1*b4 + a2*b3 + a3*b2 + a4*b1 + a5*b0 + a6*b9_19 + a7*b8_19 + a8*b7_19 + a9*b6_19
	h6 := a0*b6 + a1_2*b5 + a2*b4 + a3_2*b3 + a4*b2 + a5_2*b1 + a6*b0 + a7_2*b9_19 + a8*b8_19 + a9_2*b7_19
	h7 := a0*b7 + a1*b6 + a2*b5 + a3*b4 + a4*b3 + a5*b2 + a6*b1 + a7*b0 + a8*b9_19 + a9*b8_19
	h8 := a0*b8 + a1_2*b7 + a2*b6 + a3_2*b5 + a4*b4 + a5_2*b3 + a6*b2 + a7_2*b1 + a8*b0 + a9_2*b9_19
	h9 := a0*b9 + a1*b8 + a2*b7 + a3*b6 + a4*b5 + a5*b4 + a6*b3 + a7*b2 + a8*b1 + a9*b0

	return v.carry(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
}

// Square sets v = x * x, and returns v.
//
// x has the same limb limit as in [Element.Multiply].
func (v *Element) Square(x *Element) *Element {
	f0 := int64(x.l[0])
	f1 := int64(x.l[1])
	f2 := int64(x.l[2])
	f3 := int64(x.l[3])
	f4 := int64(x.l[4])
	f5 := int64(x.l[5])
	f6 := int64(x.l[6])
	f7 := int64(x.l[7])
	f8 := int64(x.l[8])
	f9 := int64(x.l[9])

	f0_2 := 2 * f0
	f1_2 := 2 * f1
	f2_2 := 2 * f2
	f3_2 := 2 * f3
	f4_2 := 2 * f4
	f5_2 := 2 * f5
	f6_2 := 2 * f6
	f7_2 := 2 * f7

	f5_38 := 38 * f5
	f6_19 := 19 * f6
	f7_38 := 38 * f7
	f8_19 := 19 * f8
	f9_38 := 38 * f9

	h0 := f0*f0 + f1_2*f9_38 + f2_2*f8_19 + f3_2*f7_38 + f4_2*f6_19 + f5*f5_38
	h1 := f0_2*f1 + f2*f9_38 + f3_2*f8_19 + f4*f7_38 + f5_2*f6_19
	h2 := f0_2*f2 + f1_2*f1 + f3_2*f9_38 + f4_2*f8_19 + f5_2*f7_38 + f6*f6_19
	h3 := f0_2*f3 + f1_2*f2 + f4*f9_38 + f5_2*f8_19 + f6*f7_38
	h4 := f0_2*f4 + f1_2*f3_2 + f2*f2 + f5_2*f9_38 + f6_2*f8_19 + f7*f7_38
	h5 := f0_2*f5 + f1_2*f4 + f2_2*f3 + f6*f9_38 + f7_2*f8_19
	h6 := f0_2*f6 + f1_2*f5_2 + f2_2*f4 + f3_2*f3 + f7_2*f9_38 + f8*f8_19
	h7 := f0_2*f7 + f1_2*f6 + f2_2*f5 + f3_2*f4 + f8*f9_38
	h8 := f0_2*f8 + f1_2*f7_2 + f2_2*f6 + f3_2*f5_2 + f4*f4 + f9*f9_38
	h9 := f0_2*f9 + f1_2*f8 + f2_2*f7 + f3_2*f6 + f4_2*f5

	return v.carry(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	// Inversion is implemented as exponentiation with exponent p − 2. It uses the
	// same sequence of 254 squarings and 11 multiplications as [Curve25519].
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)             // 2
	t.Square(&z2)            // 4
	t.Square(&t)             // 8
	z9.Multiply(&t, z)       // 9
	z11.Multiply(&z9, &z2)   // 11
	t.Square(&z11)           // 22
	z2_5_0.Multiply(&t, &z9) // 31 = 2^5 - 2^0

	t.Square(&z2_5_0) // 2^6 - 2^1
	for i := 0; i < 4; i++ {
		t.Square(&t) // 2^10 - 2^5
	}
	z2_10_0.Multiply(&t, &z2_5_0) // 2^10 - 2^0

	t.Square(&z2_10_0) // 2^11 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^20 - 2^10
	}
	z2_20_0.Multiply(&t, &z2_10_0) // 2^20 - 2^0

	t.Square(&z2_20_0) // 2^21 - 2^1
	for i := 0; i < 19; i++ {
		t.Square(&t) // 2^40 - 2^20
	}
	t.Multiply(&t, &z2_20_0) // 2^40 - 2^0

	t.Square(&t) // 2^41 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^50 - 2^10
	}
	z2_50_0.Multiply(&t, &z2_10_0) // 2^50 - 2^0

	t.Square(&z2_50_0) // 2^51 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^100 - 2^50
	}
	z2_100_0.Multiply(&t, &z2_50_0) // 2^100 - 2^0

	t.Square(&z2_100_0) // 2^101 - 2^1
	for i := 0; i < 99; i++ {
		t.Square(&t) // 2^200 - 2^100
	}
	t.Multiply(&t, &z2_100_0) // 2^200 - 2^0

	t.Square(&t) // 2^201 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^250 - 2^50
	}
	t.Multiply(&t, &z2_50_0) // 2^250 - 2^0

	t.Square(&t) // 2^251 - 2^1
	t.Square(&t) // 2^252 - 2^2
	t.Square(&t) // 2^253 - 2^3
	t.Square(&t) // 2^254 - 2^4
	t.Square(&t) // 2^255 - 2^5

	return v.Multiply(&t, &z11) // 2^255 - 21
}
