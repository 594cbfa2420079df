package ed2curve

import (
	"fmt"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"

	"github.com/AlexanderYastrebov/ed2curve/field"
)

// edwardsY returns the affine y-coordinate of p.
func edwardsY(p *edwards25519.Point) *field.Element {
	return fieldElementFromBytes(p.Bytes())
}

func TestMontgomeryFromEdwardsY(t *testing.T) {
	g := edwards25519.NewGeneratorPoint()

	var u field.Element
	montgomeryFromEdwardsY(&u, edwardsY(g))
	t.Logf("u: %x", u.Bytes())

	assert.Equal(t, fieldElementFromBytes([]byte{9}).Bytes(), u.Bytes())
}

func TestEdwardsYFromMontgomery(t *testing.T) {
	g := edwards25519.NewGeneratorPoint()

	var y field.Element
	edwardsYFromMontgomery(&y, fieldElementFromBytes([]byte{9}))

	assert.Equal(t, edwardsY(g).Bytes(), y.Bytes())
}

func TestMontgomeryFromEdwardsYMultiples(t *testing.T) {
	for _, n := range []uint64{1, 2, 3, 5, 8, 1000, 1 << 40} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			p := new(edwards25519.Point).ScalarBaseMult(scalarFromUint64(n))

			var u, y field.Element
			montgomeryFromEdwardsY(&u, edwardsY(p))
			assert.Equal(t, p.BytesMontgomery(), u.Bytes())

			edwardsYFromMontgomery(&y, &u)
			assert.Equal(t, edwardsY(p).Bytes(), y.Bytes())
		})
	}
}

func TestMontgomeryFromEdwardsYAlias(t *testing.T) {
	p := new(edwards25519.Point).ScalarBaseMult(scalarFromUint64(3))

	v := edwardsY(p)
	montgomeryFromEdwardsY(v, v)
	assert.Equal(t, p.BytesMontgomery(), v.Bytes())

	edwardsYFromMontgomery(v, v)
	assert.Equal(t, edwardsY(p).Bytes(), v.Bytes())
}

func TestMontgomeryFromEdwardsYExceptional(t *testing.T) {
	var u, y field.Element

	// y = 1, the identity
	montgomeryFromEdwardsY(&u, _1)
	assert.Equal(t, make([]byte, 32), u.Bytes())

	// y = -1, the point of order 2, maps to u = 0 and back
	minusOne := new(field.Element).Negate(_1)
	montgomeryFromEdwardsY(&u, minusOne)
	assert.Equal(t, make([]byte, 32), u.Bytes())

	edwardsYFromMontgomery(&y, &u)
	assert.Equal(t, minusOne.Bytes(), y.Bytes())

	// u = -1 has no Edwards image
	edwardsYFromMontgomery(&y, minusOne)
	assert.Equal(t, make([]byte, 32), y.Bytes())
}

func BenchmarkMontgomeryFromEdwardsY(b *testing.B) {
	var u field.Element
	y := edwardsY(edwards25519.NewGeneratorPoint())

	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		montgomeryFromEdwardsY(&u, y)
	}
}
