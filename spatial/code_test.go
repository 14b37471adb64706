package spatial

import (
	"encoding/json"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/arloliu/uvoxid/errs"
	"github.com/stretchr/testify/require"
)

func randomCode(rng *rand.Rand) Code {
	return FromWords(rng.Uint64(), rng.Uint64(), rng.Uint64())
}

func TestBytes_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	codes := []Code{Zero, FromWords(0, 0, 1), FromWords(math.MaxUint64, math.MaxUint64, math.MaxUint64)}
	for range 100 {
		codes = append(codes, randomCode(rng))
	}

	for _, c := range codes {
		b := c.Bytes()
		require.Len(t, b, Size)

		got, err := FromBytes(b)
		require.NoError(t, err)
		require.Equal(t, c, got)

		arr := c.Array()
		require.Equal(t, b, arr[:])
	}
}

func TestBytes_BigEndianLayout(t *testing.T) {
	c := FromWords(0x0102030405060708, 0x1112131415161718, 0x2122232425262728)
	require.Equal(t, []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
		0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28,
	}, c.Bytes())

	// Leading zero bytes are kept.
	require.Equal(t, make([]byte, Size), Zero.Bytes())
	require.Equal(t, []byte{0xAA, 0x00}, FromWords(0, 0, 0).AppendBytes([]byte{0xAA})[:2])
}

func TestFromBytes_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 8, 23, 25, 48} {
		_, err := FromBytes(make([]byte, n))
		require.ErrorIs(t, err, errs.ErrInvalidLength)
	}
}

func TestCompare(t *testing.T) {
	a := FromWords(1, 0, 0)
	b := FromWords(0, math.MaxUint64, math.MaxUint64)
	c := FromWords(0, 5, 1)
	d := FromWords(0, 5, 2)

	require.Equal(t, 1, a.Compare(b))
	require.Equal(t, -1, b.Compare(a))
	require.Equal(t, -1, c.Compare(d))
	require.Equal(t, 0, d.Compare(d))
}

func TestMasks(t *testing.T) {
	require.Equal(t, Zero, HighBitsMask(0))
	require.Equal(t, FromWords(math.MaxUint64, math.MaxUint64, math.MaxUint64), HighBitsMask(TotalBits))
	require.Equal(t, FromWords(math.MaxUint64, math.MaxUint64, 0xFFFFFFFFFFFFFFFC), HighBitsMask(190))
	require.Equal(t, FromWords(0xF800000000000000, 0, 0), HighBitsMask(5))
	require.Equal(t, FromWords(math.MaxUint64, 0x8000000000000000, 0), HighBitsMask(65))
	require.Equal(t, HighBitsMask(TotalBits), HighBitsMask(500))

	require.Equal(t, Zero, LowBitsMask(0))
	require.Equal(t, FromWords(0, 0, 3), LowBitsMask(2))
	require.Equal(t, FromWords(0, 1, math.MaxUint64), LowBitsMask(65))
	require.Equal(t, HighBitsMask(TotalBits), LowBitsMask(TotalBits))

	for n := 0; n <= TotalBits; n++ {
		require.Equal(t, HighBitsMask(TotalBits), HighBitsMask(n).Or(LowBitsMask(TotalBits-n)))
		require.Equal(t, Zero, HighBitsMask(n).And(LowBitsMask(TotalBits-n)))
	}
}

func TestBitLen(t *testing.T) {
	require.Equal(t, 0, Zero.BitLen())
	require.Equal(t, 1, FromWords(0, 0, 1).BitLen())
	require.Equal(t, 65, FromWords(0, 1, 0).BitLen())
	require.Equal(t, 192, FromWords(math.MaxUint64, 0, 0).BitLen())
}

func TestBig(t *testing.T) {
	c, err := Encode(earthRadiusUm, 0, 0)
	require.NoError(t, err)

	want := new(big.Int).Lsh(big.NewInt(earthRadiusUm), 128)
	want.Or(want, new(big.Int).Lsh(big.NewInt(90_000_000), 64))
	want.Or(want, big.NewInt(180_000_000))
	require.Equal(t, 0, want.Cmp(c.Big()))

	back, err := FromBig(want)
	require.NoError(t, err)
	require.Equal(t, c, back)

	_, err = FromBig(big.NewInt(-1))
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = FromBig(new(big.Int).Lsh(big.NewInt(1), 192))
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = FromBig(nil)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestHash(t *testing.T) {
	a := FromWords(1, 2, 3)
	require.Equal(t, a.Hash(), FromWords(1, 2, 3).Hash())
	require.NotEqual(t, a.Hash(), FromWords(1, 2, 4).Hash())
}

func TestMarshalers(t *testing.T) {
	c, err := Encode(earthRadiusUm, 25_760_000, -80_190_000)
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		text, err := c.MarshalText()
		require.NoError(t, err)
		require.Equal(t, c.Base32(), string(text))
		require.Equal(t, c.Base32(), c.String())

		var got Code
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, c, got)

		require.ErrorIs(t, got.UnmarshalText([]byte("uvoxid:AAAA")), errs.ErrInvalidFormat)
	})

	t.Run("binary", func(t *testing.T) {
		data, err := c.MarshalBinary()
		require.NoError(t, err)

		var got Code
		require.NoError(t, got.UnmarshalBinary(data))
		require.Equal(t, c, got)

		require.ErrorIs(t, got.UnmarshalBinary(data[:10]), errs.ErrInvalidLength)
	})

	t.Run("json", func(t *testing.T) {
		type point struct {
			Code Code `json:"code"`
		}
		data, err := json.Marshal(point{Code: c})
		require.NoError(t, err)
		require.JSONEq(t, `{"code":"`+c.Base32()+`"}`, string(data))

		var got point
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, c, got.Code)
	})
}
