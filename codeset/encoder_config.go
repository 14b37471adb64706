package codeset

import (
	"fmt"

	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/format"
	"github.com/arloliu/uvoxid/internal/options"
)

// initialCodeCapacity is the initial capacity of an encoder's code slice.
const initialCodeCapacity = 64

// EncoderConfig holds the settings an Encoder writes into its header.
type EncoderConfig struct {
	flag     Flag
	maxCodes int64 // up to MaxCodeCount, which overflows int on 32-bit
	unique   bool
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		flag:     NewFlag(),
		maxCodes: MaxCodeCount,
	}
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.flag.SetCompressionType(comp)
		return nil
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, comp)
	}
}

func (c *EncoderConfig) setMaxCodes(n int) error {
	if n < 1 || int64(n) > MaxCodeCount {
		return fmt.Errorf("%w: max codes %d not in [1, %d]", errs.ErrOutOfRange, n, int64(MaxCodeCount))
	}
	c.maxCodes = int64(n)

	return nil
}

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the payload compression.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes header integers and codes little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.WithLittleEndian()
	})
}

// WithBigEndian writes header integers and codes big-endian, matching the
// 24-byte binary form of a single code.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.WithBigEndian()
	})
}

// WithSorted sorts codes in ascending order before writing and marks the set
// as sorted, which enables binary search in Set.Contains.
func WithSorted() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.SetSorted(true)
	})
}

// WithMaxCodes caps the number of codes the encoder accepts.
func WithMaxCodes(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setMaxCodes(n)
	})
}

// WithUnique rejects a code that was already added with errs.ErrDuplicateCode.
func WithUnique() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.unique = true
	})
}
