package spatial

import (
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/arloliu/uvoxid/errs"
)

const (
	// Tag prefixes every Base32 rendering.
	Tag = "uvoxid:"
	// HexLen is the number of hex digits in the hex form, separators excluded.
	HexLen = 2 * Size
	// GroupLen is the number of unpadded Base32 symbols encoding one 8-byte field.
	GroupLen = 13
	// CompactLen is the number of unpadded Base32 symbols encoding all 24 bytes.
	CompactLen = 39
	// Separator joins the per-field groups of the hex and grouped Base32 forms.
	Separator = "-"
	// Base32Alphabet is the RFC 4648 alphabet used by every Base32 form.
	Base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

// b32 is the standard RFC 4648 alphabet with padding stripped on output.
// Decoding through it treats missing padding as implied.
var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// Hex returns the grouped hexadecimal form of c: three 16-digit lowercase
// groups, one per field, joined by "-".
func (c Code) Hex() string {
	return fmt.Sprintf("%016x-%016x-%016x", c.hi, c.mid, c.lo)
}

// ParseHex parses the grouped hexadecimal form.
//
// The ungrouped 48-digit form is accepted as well. In the grouped form the
// two separators must sit between the 16-digit groups. Upper-case digits are
// accepted.
//
// Returns:
//   - Code: The parsed code
//   - error: errs.ErrInvalidFormat on a misplaced separator, a non-hex digit
//     or a digit count other than 48
func ParseHex(s string) (Code, error) {
	clean := s
	if len(s) == HexLen+2 && s[16] == Separator[0] && s[33] == Separator[0] {
		clean = s[:16] + s[17:33] + s[34:]
	}
	if strings.Contains(clean, Separator) {
		return Zero, fmt.Errorf("%w: misplaced hex separator", errs.ErrInvalidFormat)
	}
	if len(clean) != HexLen {
		return Zero, fmt.Errorf("%w: expected %d hex digits, got %d", errs.ErrInvalidFormat, HexLen, len(clean))
	}

	raw, err := hex.DecodeString(clean)
	if err != nil {
		return Zero, fmt.Errorf("%w: %w", errs.ErrInvalidFormat, err)
	}

	return FromBytes(raw)
}

// Base32 returns the grouped Base32 form of c:
//
//	uvoxid:RRRRRRRRRRRRR-LLLLLLLLLLLLL-MMMMMMMMMMMMM
//
// Each 8-byte field is encoded on its own and stripped of padding, giving
// three groups of GroupLen symbols. This is the canonical text form.
func (c Code) Base32() string {
	raw := c.Array()

	buf := make([]byte, 0, len(Tag)+3*GroupLen+2)
	buf = append(buf, Tag...)
	buf = b32.AppendEncode(buf, raw[0:8])
	buf = append(buf, Separator...)
	buf = b32.AppendEncode(buf, raw[8:16])
	buf = append(buf, Separator...)
	buf = b32.AppendEncode(buf, raw[16:24])

	return string(buf)
}

// ParseBase32 parses the grouped Base32 form produced by Code.Base32.
//
// The "uvoxid:" tag is optional. The remainder must split on "-" into exactly
// three groups, and each group must decode on its own to exactly 8 bytes.
//
// Returns:
//   - Code: The parsed code
//   - error: errs.ErrInvalidFormat on a wrong group count, an invalid symbol
//     or a group that does not decode to 8 bytes
func ParseBase32(s string) (Code, error) {
	parts := strings.Split(strings.TrimPrefix(s, Tag), Separator)
	if len(parts) != 3 {
		return Zero, fmt.Errorf("%w: expected 3 groups, got %d", errs.ErrInvalidFormat, len(parts))
	}

	raw := make([]byte, 0, Size)
	for i, part := range parts {
		if err := checkBase32Symbols(part); err != nil {
			return Zero, fmt.Errorf("%w: group %d: %w", errs.ErrInvalidFormat, i, err)
		}
		field, err := b32.DecodeString(part)
		if err != nil {
			return Zero, fmt.Errorf("%w: group %d: %w", errs.ErrInvalidFormat, i, err)
		}
		if len(field) != Size/3 {
			return Zero, fmt.Errorf("%w: group %d decodes to %d bytes, expected %d",
				errs.ErrInvalidFormat, i, len(field), Size/3)
		}
		raw = append(raw, field...)
	}

	return FromBytes(raw)
}

// Base32Compact returns the compact Base32 form of c: the tag followed by the
// unpadded Base32 encoding of all 24 bytes as one blob of CompactLen symbols.
//
// Symbol i carries bits [191-5i, 187-5i] of the integer, so a prefix of n
// symbols covers exactly the top 5n bits.
func (c Code) Base32Compact() string {
	raw := c.Array()

	buf := make([]byte, 0, len(Tag)+CompactLen)
	buf = append(buf, Tag...)
	buf = b32.AppendEncode(buf, raw[:])

	return string(buf)
}

// ParseBase32Compact parses the compact Base32 form produced by
// Code.Base32Compact.
//
// The "uvoxid:" tag is optional and every "-" is removed before decoding the
// remainder as a single blob. Note that a grouped string passed here is
// decoded with a different byte grouping than ParseBase32 uses, and in
// general yields a different code.
//
// Returns:
//   - Code: The parsed code
//   - error: errs.ErrInvalidFormat on an invalid symbol or when the blob does
//     not decode to exactly 24 bytes
func ParseBase32Compact(s string) (Code, error) {
	clean := strings.ReplaceAll(strings.TrimPrefix(s, Tag), Separator, "")
	if err := checkBase32Symbols(clean); err != nil {
		return Zero, fmt.Errorf("%w: %w", errs.ErrInvalidFormat, err)
	}

	raw, err := b32.DecodeString(clean)
	if err != nil {
		return Zero, fmt.Errorf("%w: %w", errs.ErrInvalidFormat, err)
	}
	if len(raw) != Size {
		return Zero, fmt.Errorf("%w: decodes to %d bytes, expected %d", errs.ErrInvalidFormat, len(raw), Size)
	}

	return FromBytes(raw)
}

// checkBase32Symbols rejects any byte outside Base32Alphabet. The stdlib
// decoder skips '\r' and '\n', so they have to be caught here.
func checkBase32Symbols(s string) error {
	for i := range len(s) {
		if strings.IndexByte(Base32Alphabet, s[i]) < 0 {
			return fmt.Errorf("invalid base32 symbol %q at offset %d", s[i], i)
		}
	}

	return nil
}
