package ed2curve

import (
	"github.com/AlexanderYastrebov/ed2curve/field"
)

// Constant 1
var _1 = new(field.Element).One()

// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
// u = (1+y)/(1-y)
//
// The map is undefined at y = 1, the Edwards identity. There 1/(1-y)
// evaluates to 0 and so does u.
func montgomeryFromEdwardsY(u, y *field.Element) *field.Element {
	var t field.Element

	t.Subtract(_1, y)
	t.Invert(&t)
	u.Add(_1, y)
	return u.Multiply(u, &t) // u = (1+y)/(1-y)
}

// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
// y = (u-1)/(u+1)
//
// u = -1 has no Edwards counterpart and maps to y = 0.
func edwardsYFromMontgomery(y, u *field.Element) *field.Element {
	var t field.Element

	t.Add(u, _1)
	t.Invert(&t)
	y.Subtract(u, _1)
	return y.Multiply(y, &t) // y = (u-1)/(u+1)
}
