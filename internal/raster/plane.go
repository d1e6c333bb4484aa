package raster

import (
	"errors"
	"fmt"

	"github.com/rdpbitmap/codec/metrics"
)

// ErrMissingPlaneHeader is returned when 32bpp data doesn't begin with the
// required 0x10 plane-mode marker (§4.5).
var ErrMissingPlaneHeader = errors.New("raster: missing 32bpp plane header byte")

// ErrPlaneSizeMismatch is returned when the four planes don't exactly
// consume the declared input size (§4.5, §7).
var ErrPlaneSizeMismatch = errors.New("raster: plane byte count mismatch")

// DecodePlanes decodes the 32bpp plane format into a BGRA scratch raster
// (one byte per channel, channel-interleaved, stride 4) per §4.5. dst must
// be width*height*4 bytes. The four planes are written to byte offsets
// +3, +2, +1, +0 respectively, matching the source's decode order so that
// the later RGBA conversion reads channels back out as B,G,R,A.
func DecodePlanes(dst []byte, width, height int, src []byte, counters *metrics.Counters) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid dimensions %dx%d", width, height)
	}
	if len(dst) < width*height*4 {
		return fmt.Errorf("raster: destination buffer too small")
	}
	if len(src) < 1 {
		return ErrMissingPlaneHeader
	}
	if src[0] != 0x10 {
		return ErrMissingPlaneHeader
	}

	total := 1
	for _, channelOffset := range [4]int{3, 2, 1, 0} {
		if total > len(src) {
			return ErrPlaneSizeMismatch
		}
		n, err := decodePlane(dst, channelOffset, width, height, src[total:])
		if err != nil {
			return err
		}
		total += n
	}

	counters.Consumed(total)
	if total != len(src) {
		return ErrPlaneSizeMismatch
	}
	return nil
}

// decodePlane decodes one of the four 32bpp color planes into dst at byte
// offset channelOffset, stride 4, and returns the number of src bytes
// consumed. Rows are processed bottom-up; the first row is stored as
// literal bytes, subsequent rows as zigzag-encoded deltas from the row
// below (§4.5).
func decodePlane(dst []byte, channelOffset, width, height int, src []byte) (int, error) {
	pos := 0
	var prevRow []byte // nil for the first (bottom) row

	for row := height - 1; row >= 0; row-- {
		rowStart := row * width * 4
		thisRow := make([]byte, width)

		col := 0
		color := 0
		for col < width {
			if pos >= len(src) {
				return 0, ErrUnderflow
			}
			code := src[pos]
			pos++

			replLen := int(code & 0x0F)
			colLen := int((code >> 4) & 0x0F)
			revcode := (replLen << 4) | colLen
			if revcode >= 16 && revcode <= 47 {
				replLen = revcode
				colLen = 0
			}
			if col+colLen+replLen > width {
				return 0, fmt.Errorf("raster: plane run exceeds row width")
			}

			if prevRow == nil {
				for ; colLen > 0; colLen-- {
					if pos >= len(src) {
						return 0, ErrUnderflow
					}
					color = int(src[pos])
					pos++
					thisRow[col] = byte(color)
					col++
				}
				for ; replLen > 0; replLen-- {
					thisRow[col] = byte(color)
					col++
				}
			} else {
				for ; colLen > 0; colLen-- {
					if pos >= len(src) {
						return 0, ErrUnderflow
					}
					x := src[pos]
					pos++
					if x&1 != 0 {
						color = -(int(x>>1) + 1)
					} else {
						color = int(x >> 1)
					}
					v := int(prevRow[col]) + color
					thisRow[col] = byte(v)
					col++
				}
				for ; replLen > 0; replLen-- {
					v := int(prevRow[col]) + color
					thisRow[col] = byte(v)
					col++
				}
			}
		}

		for x := 0; x < width; x++ {
			dst[rowStart+x*4+channelOffset] = thisRow[x]
		}
		prevRow = thisRow
	}

	return pos, nil
}
