package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/uvoxid/errs"
)

type (
	TextFormat      uint8
	CompressionType uint8
)

const (
	TextHex           TextFormat = 0x1 // TextHex represents the grouped hexadecimal form.
	TextBase32        TextFormat = 0x2 // TextBase32 represents the per-field grouped Base32 form.
	TextBase32Compact TextFormat = 0x3 // TextBase32Compact represents the single-blob Base32 form.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (f TextFormat) String() string {
	switch f {
	case TextHex:
		return "Hex"
	case TextBase32:
		return "Base32"
	case TextBase32Compact:
		return "Base32Compact"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseTextFormat maps a case-insensitive name to a TextFormat.
//
// Accepted names are "hex", "base32" (or "grouped") and "compact"
// (or "base32compact").
func ParseTextFormat(name string) (TextFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex":
		return TextHex, nil
	case "base32", "grouped":
		return TextBase32, nil
	case "compact", "base32compact":
		return TextBase32Compact, nil
	default:
		return 0, fmt.Errorf("%w: unknown text format %q", errs.ErrInvalidFormat, name)
	}
}

// ParseCompressionType maps a case-insensitive name to a CompressionType.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
	}
}
