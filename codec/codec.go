package codec

import (
	"fmt"

	rdpbitmap "github.com/rdpbitmap/codec"
	"github.com/rdpbitmap/codec/metrics"
)

// Codec is the common interface over a single bit-depth's RDP bitmap
// decoder. It mirrors the Codec interface in the retrieved DICOM codec
// package (Decode/Name/UID), generalized to this format's Name() per depth
// in place of a DICOM transfer-syntax UID.
type Codec interface {
	// Decode decompresses data (width x height pixels at this codec's
	// depth) into an RGBA8888 DecodeResult.
	Decode(data []byte, width, height int) (*DecodeResult, error)

	// Name returns a human-readable codec name, e.g. "RDP RLE 16bpp".
	Name() string

	// Depth returns the bits-per-pixel this codec handles.
	Depth() int
}

// DecodeResult carries the RGBA8888 output of a successful decode.
type DecodeResult struct {
	RGBA          []byte
	Width, Height int
}

// depthCodec adapts one of the package-level Decode15/16/24/32 functions
// to the Codec interface.
type depthCodec struct {
	name  string
	depth int
	run   func(output []byte, outW, outH, inW, inH int, input []byte, opts rdpbitmap.Options) bool
}

func (c *depthCodec) Name() string { return c.name }
func (c *depthCodec) Depth() int   { return c.depth }

func (c *depthCodec) Decode(data []byte, width, height int) (*DecodeResult, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidParameter
	}
	rgba := make([]byte, width*height*4)
	counters := &metrics.Counters{}
	if !c.run(rgba, width, height, width, height, data, rdpbitmap.Options{Counters: counters}) {
		return nil, fmt.Errorf("%w: %s", ErrDecodeFailed, c.name)
	}
	return &DecodeResult{RGBA: rgba, Width: width, Height: height}, nil
}

// New15 returns a Codec wrapping rdpbitmap.Decode15.
func New15() Codec {
	return &depthCodec{name: "RDP RLE 15bpp", depth: 15, run: rdpbitmap.Decode15}
}

// New16 returns a Codec wrapping rdpbitmap.Decode16.
func New16() Codec {
	return &depthCodec{name: "RDP RLE 16bpp", depth: 16, run: rdpbitmap.Decode16}
}

// New24 returns a Codec wrapping rdpbitmap.Decode24.
func New24() Codec {
	return &depthCodec{name: "RDP RLE 24bpp", depth: 24, run: rdpbitmap.Decode24}
}

// New32 returns a Codec wrapping rdpbitmap.Decode32.
func New32() Codec {
	return &depthCodec{name: "RDP Planar 32bpp", depth: 32, run: rdpbitmap.Decode32}
}
