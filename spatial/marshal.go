package spatial

import (
	"encoding"
	"fmt"
)

var (
	_ fmt.Stringer               = Code{}
	_ encoding.TextMarshaler     = Code{}
	_ encoding.TextUnmarshaler   = (*Code)(nil)
	_ encoding.BinaryMarshaler   = Code{}
	_ encoding.BinaryUnmarshaler = (*Code)(nil)
)

// String returns the grouped Base32 form.
func (c Code) String() string {
	return c.Base32()
}

// MarshalText implements encoding.TextMarshaler using the grouped Base32 form.
// JSON encodes a Code as this string.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.Base32()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the grouped Base32 form.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseBase32(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the 24-byte form.
func (c Code) MarshalBinary() ([]byte, error) {
	return c.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for the 24-byte form.
func (c *Code) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
