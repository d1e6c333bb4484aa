// Package codec provides a registrable Codec interface over the four
// depth-specialized RDP bitmap decoders, grounded on the pluggable codec
// pattern used across the retrieved DICOM codec reference
// (codec/{codec,registry,errors}.go in the example corpus).
package codec

import "errors"

var (
	// ErrCodecNotFound is returned when no codec is registered under the
	// requested name or depth.
	ErrCodecNotFound = errors.New("codec: not found")

	// ErrDecodeFailed wraps a decode_<DEPTH> call that returned false —
	// see spec §7: the underlying engine collapses every failure kind
	// (allocation, format, overrun, underflow) onto a single boolean, so
	// this is the one error the codec layer can report.
	ErrDecodeFailed = errors.New("codec: decode failed")

	// ErrInvalidParameter indicates an invalid width or height.
	ErrInvalidParameter = errors.New("codec: invalid parameter")
)
