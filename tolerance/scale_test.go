package tolerance

import (
	"testing"

	"github.com/arloliu/uvoxid/errs"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	tests := []struct {
		input    string
		sigChars int
		human    string
	}{
		{"uvoxid:B", 1, "1.00 µm"},
		{"uvoxid:AB", 1, "32.00 µm"},
		{"AAAB", 1, "3.28 cm"},
		{"uvoxid:AAAAB", 1, "1.05 m"},
		{"uvoxid:AAAAAAB", 1, "1.07 km"},
		{"uvoxid:AAAA", 0, "1.05 m"},
		{"uvoxid:AAAALS25GEPAA-AAAAAAAFLVFIA-AAAAAAAKXKKQA", 35, "1.05 m"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := Scale(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.sigChars, res.SigChars)
			require.Equal(t, tt.sigChars*BitsPerChar, res.BitsUsed)
			require.Equal(t, tt.human, res.Human())
			require.Contains(t, res.String(), tt.human)
		})
	}
}

func TestScale_Invalid(t *testing.T) {
	for _, in := range []string{"", "uvoxid:", "uvoxid:-", "uvoxid:AB1", "uvoxid:ab"} {
		_, err := Scale(in)
		require.ErrorIs(t, err, errs.ErrInvalidFormat, in)
	}
}

func TestResolution_String(t *testing.T) {
	r := Resolution{Meters: 1e-6, SigChars: 39, BitsUsed: 195}
	require.Equal(t, "Resolution ≈ 1.00 µm [39 sig chars, 195 bits used]", r.String())
	require.Equal(t, "5.00 nm", Resolution{Meters: 5e-9}.Human())
	require.Equal(t, "1.00e-12 m", Resolution{Meters: 1e-12}.Human())
}
