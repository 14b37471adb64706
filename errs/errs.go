// Package errs defines the sentinel errors returned by uvoxid packages.
//
// Errors are wrapped with context at the call site, so callers should match
// them with errors.Is rather than comparing error values directly.
package errs

import "errors"

var (
	// Codec errors
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidFormat = errors.New("invalid text format")
	ErrInvalidLength = errors.New("invalid binary length")

	// Code set errors
	ErrInvalidHeaderSize      = errors.New("invalid code set header size")
	ErrInvalidMagic           = errors.New("invalid code set magic number")
	ErrChecksumMismatch       = errors.New("code set checksum mismatch")
	ErrCodeCountMismatch      = errors.New("code set count mismatch")
	ErrCodeCountExceeded      = errors.New("code set count exceeded")
	ErrEncoderFinished        = errors.New("encoder already finished")
	ErrDuplicateCode          = errors.New("duplicate code in code set")
	ErrPayloadTooLarge        = errors.New("decompressed payload exceeds declared size")
	ErrUnsupportedCompression = errors.New("unsupported compression type")

	// Entanglement errors
	ErrGroupNotFound = errors.New("entanglement group not found")
	ErrEmptyGroup    = errors.New("entanglement group is empty")

	// Geometry errors
	ErrRadiusMismatch = errors.New("codes are not on the same spherical shell")
)
