package sha512

import (
	stdsha512 "crypto/sha512"
	"encoding/hex"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum512Vectors(t *testing.T) {
	// FIPS 180-4 examples.
	for _, tc := range []struct {
		in   string
		want string
	}{
		{
			"",
			"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		},
		{
			"abc",
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
		{
			"abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			"8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909",
		},
	} {
		got := Sum512([]byte(tc.in))
		assert.Equal(t, tc.want, hex.EncodeToString(got[:]), "input %q", tc.in)
	}
}

func TestSum512MatchesStandardLibrary(t *testing.T) {
	rnd := mathrand.New(mathrand.NewSource(1))
	buf := make([]byte, 3*BlockSize+5)
	rnd.Read(buf)

	// Cover every padding boundary around one and two blocks.
	for n := 0; n <= len(buf); n++ {
		assert.Equal(t, stdsha512.Sum512(buf[:n]), Sum512(buf[:n]), "length %d", n)
	}
}

func TestWriteChunked(t *testing.T) {
	rnd := mathrand.New(mathrand.NewSource(2))
	data := make([]byte, 1000)
	rnd.Read(data)
	want := stdsha512.Sum512(data)

	for _, chunk := range []int{1, 7, 64, 111, 112, 127, 128, 129, 500} {
		var d digest
		d.Reset()
		for p := data; len(p) > 0; {
			n := min(chunk, len(p))
			written, err := d.Write(p[:n])
			require.NoError(t, err)
			require.Equal(t, n, written)
			p = p[n:]
		}
		assert.Equal(t, want, d.checkSum(), "chunk %d", chunk)
	}
}

func TestReset(t *testing.T) {
	var d digest
	d.Reset()
	d.Write([]byte("garbage"))
	d.Reset()
	d.Write([]byte("abc"))

	assert.Equal(t, stdsha512.Sum512([]byte("abc")), d.checkSum())
}

func BenchmarkSum512Seed(b *testing.B) {
	var seed [32]byte
	b.SetBytes(int64(len(seed)))
	for iter := 0; iter < b.N; iter++ {
		Sum512(seed[:])
	}
}
