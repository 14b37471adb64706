package spatial

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/arloliu/uvoxid/errs"
	"github.com/stretchr/testify/require"
)

func earthEquator(t *testing.T) Code {
	t.Helper()
	c, err := Encode(earthRadiusUm, 0, 0)
	require.NoError(t, err)

	return c
}

func TestHex(t *testing.T) {
	c := earthEquator(t)
	require.Equal(t, "000005cb5d311e00-00000000055d4a80-000000000aba9500", c.Hex())
	require.Equal(t, "0000000000000000-0000000000000000-0000000000000000", Zero.Hex())

	got, err := ParseHex(c.Hex())
	require.NoError(t, err)
	require.Equal(t, c, got)

	t.Run("without separators and upper case", func(t *testing.T) {
		got, err := ParseHex(strings.ToUpper(strings.ReplaceAll(c.Hex(), "-", "")))
		require.NoError(t, err)
		require.Equal(t, c, got)
	})

	t.Run("invalid", func(t *testing.T) {
		inputs := []string{
			"",
			"000005cb5d311e00-00000000055d4a80",
			"000005cb5d311e00-00000000055d4a80-000000000aba95000",
			"000005cb5d311e00-00000000055d4a80-000000000aba950g",
			"uvoxid:AAAALS25GEPAA-AAAAAAAFLVFIA-AAAAAAAKXKKQA",
			"000005cb5d311e0-000000000055d4a80-000000000aba9500",
			"000005cb5d311e00--00000000055d4a80000000000aba9500",
			"-000005cb5d311e0000000000055d4a80000000000aba9500-",
			"000005cb-5d311e0000000000055d4a80000000000aba9500",
			"000005cb5d311e00-00000000055d4a80-000000000aba9500-",
		}
		for _, in := range inputs {
			_, err := ParseHex(in)
			require.ErrorIs(t, err, errs.ErrInvalidFormat, in)
		}
	})
}

func TestBase32Grouped(t *testing.T) {
	c := earthEquator(t)
	s := c.Base32()
	require.Equal(t, "uvoxid:AAAALS25GEPAA-AAAAAAAFLVFIA-AAAAAAAKXKKQA", s)

	groups := strings.Split(strings.TrimPrefix(s, Tag), Separator)
	require.Len(t, groups, 3)
	for _, g := range groups {
		require.Len(t, g, GroupLen)
	}

	got, err := ParseBase32(s)
	require.NoError(t, err)
	require.Equal(t, c, got)

	t.Run("tag is optional", func(t *testing.T) {
		got, err := ParseBase32(strings.TrimPrefix(s, Tag))
		require.NoError(t, err)
		require.Equal(t, c, got)
	})

	t.Run("zero keeps leading symbols", func(t *testing.T) {
		require.Equal(t, "uvoxid:AAAAAAAAAAAAA-AAAAAAAAAAAAA-AAAAAAAAAAAAA", Zero.Base32())
	})
}

func TestBase32Grouped_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	codes := []Code{Zero, FromWords(math.MaxUint64, math.MaxUint64, math.MaxUint64)}
	for range 200 {
		codes = append(codes, randomCode(rng))
	}

	for _, c := range codes {
		got, err := ParseBase32(c.Base32())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}

func TestParseBase32_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"two groups", "uvoxid:AAAALS25GEPAA-AAAAAAAFLVFIA"},
		{"four groups", "uvoxid:AAAALS25GEPAA-AAAAAAAFLVFIA-AAAAAAAKXKKQA-AAAAAAAAAAAAA"},
		{"invalid symbol", "uvoxid:AAAALS25GEPA1-AAAAAAAFLVFIA-AAAAAAAKXKKQA"},
		{"lower case", "uvoxid:aaaals25gepaa-aaaaaaaflvfia-aaaaaaakxkkqa"},
		{"short group", "uvoxid:AAAALS25GEPA-AAAAAAAFLVFIA-AAAAAAAKXKKQA"},
		{"long group", "uvoxid:AAAALS25GEPAAAA-AAAAAAAFLVFIA-AAAAAAAKXKKQA"},
		{"empty group", "uvoxid:-AAAAAAAFLVFIA-AAAAAAAKXKKQA"},
		{"embedded newline", "uvoxid:AAAALS25\nGEPAA-AAAAAAAFLVFIA-AAAAAAAKXKKQA"},
		{"embedded carriage return", "uvoxid:AAAALS25GEPAA-AAAAAAAFLVFIA-AAAAAAA\rKXKKQA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBase32(tt.input)
			require.ErrorIs(t, err, errs.ErrInvalidFormat)
		})
	}
}

func TestBase32Compact(t *testing.T) {
	c := earthEquator(t)
	s := c.Base32Compact()
	require.Equal(t, "uvoxid:AAAALS25GEPAAAAAAAAAKXKKQAAAAAAABK5JKAA", s)
	require.Len(t, strings.TrimPrefix(s, Tag), CompactLen)

	got, err := ParseBase32Compact(s)
	require.NoError(t, err)
	require.Equal(t, c, got)

	rng := rand.New(rand.NewSource(5))
	for range 200 {
		c := randomCode(rng)
		got, err := ParseBase32Compact(c.Base32Compact())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}

func TestParseBase32Compact_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"uvoxid:AAAA",
		"uvoxid:AAAALS25GEPAAAAAAAAAKXKKQAAAAAAABK5JKA",
		"uvoxid:AAAALS25GEPAAAAAAAAAKXKKQAAAAAAABK5JKAAAAAAAAA",
		"uvoxid:AAAALS25GEPAAAAAAAAAKXKKQAAAAAAABK5JKA0",
		"uvoxid:AAAALS25GEPAAAAAAAAAKXKKQAAAAAAABK5J\r\nKAA",
		"uvoxid:AAAALS25GEPAAAAAAAAAKXKKQAAAAAAABK5JKAA\n",
	}
	for _, in := range inputs {
		_, err := ParseBase32Compact(in)
		require.ErrorIs(t, err, errs.ErrInvalidFormat, in)
	}
}

func TestBase32_GroupingsAreDistinct(t *testing.T) {
	c := earthEquator(t)

	// The grouped string has the same symbol count as the compact one once
	// separators are removed, so the compact parser accepts it, but each
	// 13-symbol group carries one slack bit that shifts every following field.
	got, err := ParseBase32Compact(c.Base32())
	require.NoError(t, err)
	require.NotEqual(t, c, got)
	require.Equal(t, c.Radius(), got.Radius())

	_, latField, _ := got.Fields()
	require.Equal(t, uint64(0x02aea540), latField)

	// The compact string has no separators, so the grouped parser rejects it.
	_, err = ParseBase32(c.Base32Compact())
	require.ErrorIs(t, err, errs.ErrInvalidFormat)

	// Both parsers agree on the zero code, whose groups carry no set bits.
	zero, err := ParseBase32Compact(Zero.Base32())
	require.NoError(t, err)
	require.Equal(t, Zero, zero)
}

func BenchmarkBase32(b *testing.B) {
	c := FromWords(earthRadiusUm, 115_760_000, 99_810_000)
	for b.Loop() {
		_ = c.Base32()
	}
}

func BenchmarkParseBase32(b *testing.B) {
	s := FromWords(earthRadiusUm, 115_760_000, 99_810_000).Base32()
	for b.Loop() {
		_, _ = ParseBase32(s)
	}
}
