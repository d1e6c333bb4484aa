// Package rdpbitmap decodes the RDP "Interleaved RLE" bitmap compression
// format (MS-RDPBCGR, rdesktop's bitmap_decompress1/2/3/4) and converts the
// result to canonical RGBA8888.
//
// The package is a pure, synchronous, single-threaded library: one call
// fully decodes one bitmap, there are no suspension points, and a caller
// may run multiple decodes in parallel as long as each uses private
// buffers. See SPEC_FULL.md for the full component breakdown.
package rdpbitmap

import (
	"github.com/rdpbitmap/codec/internal/raster"
	"github.com/rdpbitmap/codec/metrics"
)

// Options configures a single decode call. The zero value is valid and
// decodes without metrics collection.
type Options struct {
	// Counters, if non-nil, is populated with per-opcode and per-pixel
	// statistics as the decode runs (see the metrics package).
	Counters *metrics.Counters
}

// Decode15 decodes width*height pixels of RGB555 (15bpp) compressed data
// from input into output, an outputWidth*outputHeight*4 RGBA8888 buffer.
// It reports whether decoding succeeded; on failure output's contents are
// undefined. This implements the decode_15 operation of spec §6.
func Decode15(output []byte, outputWidth, outputHeight, inputWidth, inputHeight int, input []byte, opts Options) bool {
	return decodeDepth(output, outputWidth, outputHeight, inputWidth, inputHeight, input, opts, raster.Format16, convert15)
}

// Decode16 decodes RGB565 (16bpp) compressed data; see Decode15.
func Decode16(output []byte, outputWidth, outputHeight, inputWidth, inputHeight int, input []byte, opts Options) bool {
	return decodeDepth(output, outputWidth, outputHeight, inputWidth, inputHeight, input, opts, raster.Format16, convert16)
}

// Decode24 decodes 24bpp (BGR triple) compressed data; see Decode15.
func Decode24(output []byte, outputWidth, outputHeight, inputWidth, inputHeight int, input []byte, opts Options) bool {
	return decodeDepth(output, outputWidth, outputHeight, inputWidth, inputHeight, input, opts, raster.Format24, convert24)
}

// decodeDepth shares the allocate/run/convert shape used by
// Decode15/16/24: allocate a scratch native raster, run the generic RLE
// engine, convert to RGBA on success.
func decodeDepth[T raster.Pixel](
	output []byte, outputWidth, outputHeight, inputWidth, inputHeight int, input []byte,
	opts Options, format raster.Format[T], convert func(dst []byte, outW, outH int, native []byte, inW, inH int),
) bool {
	if inputWidth <= 0 || inputHeight <= 0 || outputWidth <= 0 || outputHeight <= 0 {
		return false
	}

	scratch, ok := allocScratch(inputWidth, inputHeight, format.BytesPerPixel)
	if !ok {
		return false
	}

	if err := raster.Decode(format, scratch, inputWidth, inputHeight, input, opts.Counters); err != nil {
		return false
	}

	convert(output, outputWidth, outputHeight, scratch, inputWidth, inputHeight)
	return true
}

// Decode32 decodes the 32bpp plane-oriented compressed format (§4.5) and
// converts it to RGBA8888. This implements the decode_32 operation of
// spec §6; it does not use the generic opcode engine used by the other
// three depths, since 32bpp data is a distinct per-plane run-length format.
func Decode32(output []byte, outputWidth, outputHeight, inputWidth, inputHeight int, input []byte, opts Options) bool {
	if inputWidth <= 0 || inputHeight <= 0 || outputWidth <= 0 || outputHeight <= 0 {
		return false
	}

	scratch, ok := allocScratch(inputWidth, inputHeight, 4)
	if !ok {
		return false
	}

	if err := raster.DecodePlanes(scratch, inputWidth, inputHeight, input, opts.Counters); err != nil {
		return false
	}

	convert32(output, outputWidth, outputHeight, scratch, inputWidth, inputHeight)
	return true
}

// allocScratch allocates the native-depth scratch raster described in
// spec §5: width*height*bytesPerPixel bytes, released implicitly at the
// end of the call since Go is garbage collected and the scratch never
// escapes decodeDepth/Decode32.
func allocScratch(width, height, bytesPerPixel int) ([]byte, bool) {
	n := width * height * bytesPerPixel
	if n <= 0 || n/height != width*bytesPerPixel {
		return nil, false
	}
	return make([]byte, n), true
}
