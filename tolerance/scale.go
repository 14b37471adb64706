package tolerance

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/spatial"
)

// baseResolutionM is the resolution of a string with no leading 'A's.
const baseResolutionM = 1e-6

// Resolution is the spatial resolution estimated from a Base32 code string.
type Resolution struct {
	Meters   float64
	SigChars int
	BitsUsed int
}

// Human renders Meters in the largest unit that keeps the value at or above 1.
func (r Resolution) Human() string {
	m := r.Meters
	switch {
	case m >= 1_000:
		return fmt.Sprintf("%.2f km", m/1_000)
	case m >= 1:
		return fmt.Sprintf("%.2f m", m)
	case m >= 1e-3:
		return fmt.Sprintf("%.2f cm", m*100)
	case m >= 1e-6:
		return fmt.Sprintf("%.2f µm", m*1e6)
	case m >= 1e-9:
		return fmt.Sprintf("%.2f nm", m*1e9)
	default:
		return fmt.Sprintf("%.2e m", m)
	}
}

func (r Resolution) String() string {
	return fmt.Sprintf("Resolution ≈ %s [%d sig chars, %d bits used]", r.Human(), r.SigChars, r.BitsUsed)
}

// Scale estimates the resolution of a Base32 code string, grouped, compact
// or snapped, from the symbols remaining after its leading 'A's.
//
// Every leading 'A' doubles the resolution five times starting from one
// micrometer, so a string with no leading 'A' resolves to 1 µm.
//
// Returns errs.ErrInvalidFormat if the string has no symbols or contains a
// character outside the Base32 alphabet.
func Scale(s string) (Resolution, error) {
	clean := strings.ReplaceAll(strings.TrimPrefix(s, spatial.Tag), spatial.Separator, "")
	if clean == "" {
		return Resolution{}, fmt.Errorf("%w: empty code string", errs.ErrInvalidFormat)
	}
	if i := strings.IndexFunc(clean, func(r rune) bool { return !strings.ContainsRune(spatial.Base32Alphabet, r) }); i >= 0 {
		return Resolution{}, fmt.Errorf("%w: invalid base32 symbol %q", errs.ErrInvalidFormat, clean[i])
	}

	total := len(clean)
	sig := len(strings.TrimLeft(clean, string(PadChar)))
	bitsUsed := sig * BitsPerChar
	unused := total*BitsPerChar - bitsUsed

	return Resolution{
		Meters:   baseResolutionM * math.Exp2(float64(unused)),
		SigChars: sig,
		BitsUsed: bitsUsed,
	}, nil
}
