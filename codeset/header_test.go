package codeset

import (
	"testing"

	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/format"
	"github.com/stretchr/testify/require"
)

func TestFlag(t *testing.T) {
	f := NewFlag()
	require.Equal(t, uint16(MagicV1), f.GetMagicNumber())
	require.False(t, f.IsBigEndian())
	require.False(t, f.IsSorted())
	require.Equal(t, format.CompressionNone, f.CompressionType())
	require.NoError(t, f.Validate())

	f.WithBigEndian()
	f.SetSorted(true)
	f.SetCompressionType(format.CompressionLZ4)
	require.True(t, f.IsBigEndian())
	require.True(t, f.IsSorted())
	require.Equal(t, format.CompressionLZ4, f.CompressionType())
	require.Equal(t, uint16(MagicV1), f.GetMagicNumber())

	f.WithLittleEndian()
	f.SetSorted(false)
	require.Equal(t, uint16(MagicV1), f.Options)
}

func TestFlag_Validate(t *testing.T) {
	tests := []struct {
		name string
		flag Flag
		want error
	}{
		{"bad magic", Flag{Options: 0xEA10, Compression: uint8(format.CompressionNone)}, errs.ErrInvalidMagic},
		{"reserved bits", Flag{Options: MagicV1 | 0x0004, Compression: uint8(format.CompressionNone)}, errs.ErrInvalidMagic},
		{"zero compression", Flag{Options: MagicV1}, errs.ErrUnsupportedCompression},
		{"unknown compression", Flag{Options: MagicV1, Compression: 9}, errs.ErrUnsupportedCompression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.flag.Validate(), tt.want)
		})
	}
}

func TestHeader_Bytes(t *testing.T) {
	t.Run("little-endian", func(t *testing.T) {
		h := Header{Flag: NewFlag(), Count: 2, Checksum: 0x0102030405060708}
		h.Flag.SetCompressionType(format.CompressionZstd)

		require.Equal(t, []byte{
			0xD0, 0xC5, 0x02, 0x00,
			0x02, 0x00, 0x00, 0x00,
			0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		}, h.Bytes())
	})

	t.Run("big-endian keeps options little-endian", func(t *testing.T) {
		h := Header{Flag: NewFlag(), Count: 2, Checksum: 0x0102030405060708}
		h.Flag.WithBigEndian()
		h.Flag.SetSorted(true)
		h.Flag.SetCompressionType(format.CompressionZstd)

		require.Equal(t, []byte{
			0xD3, 0xC5, 0x02, 0x00,
			0x00, 0x00, 0x00, 0x02,
			0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		}, h.Bytes())
	})
}

func TestHeader_ParseRoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		h := Header{Flag: NewFlag(), Count: 123456, Checksum: 0xDEADBEEFCAFEF00D}
		h.Flag.SetCompressionType(format.CompressionS2)
		if bigEndian {
			h.Flag.WithBigEndian()
		}

		got, err := ParseHeader(append(h.Bytes(), 0xAA, 0xBB))
		require.NoError(t, err)
		require.Equal(t, h, got)
	}
}

func TestParseHeader_Errors(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	var h Header
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)

	_, err = ParseHeader(make([]byte, HeaderSize))
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}
