// Package field implements arithmetic modulo 2^255-19.
//
// [Element] type API is the same as [filippo.io/edwards25519/field.Element].
//
// Representation:
// An element is held in ten signed 32-bit limbs in radix 2^25.5, that is
// limbs alternate between 26 and 25 bits. A 10x10 limb product fits
// in 64-bit columns without intermediate carries, and additions and
// subtractions need no carries at all. This is the layout of the [ref10]
// Curve25519 implementation and is portable to every Go target.
//
// Encoding, [Element.Equal] and [Element.Select] are constant time, and
// [Element.Invert] uses a fixed addition chain.
//
// [ref10]: https://bench.cr.yp.to/supercop.html
package field
