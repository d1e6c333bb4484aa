package raster

import (
	"errors"
	"fmt"

	"github.com/rdpbitmap/codec/metrics"
)

// ErrOverrun is returned when the opcode stream tries to write more
// scanlines than the raster has rows for (§4.4, §4.7 FAIL transition).
var ErrOverrun = errors.New("raster: scanline overrun")

// ErrUnknownOpcode is returned when a command byte classifies to an opcode
// this engine doesn't implement (§4.2 "any other opcode: fatal").
var ErrUnknownOpcode = errors.New("raster: unknown opcode")

// engine holds the per-call decoder state described in spec §3. One engine
// is constructed per Decode call and discarded at the end of it — nothing
// here outlives a single decode.
type engine[T Pixel] struct {
	f Format[T]
	c *Cursor

	dst   []byte
	width int

	x        int
	height   int
	lineOff  int
	prevOff  int
	havePrev bool
	haveLine bool

	lastOpcode int
	insertMix  bool
	bicolour   bool

	mix              T
	colour1, colour2 T
	mask             maskState

	counters *metrics.Counters
}

// Decode runs the RLE opcode engine for one native pixel format over dst,
// a width*height*f.BytesPerPixel scratch buffer, consuming src. It
// implements spec §4.1-§4.4 and §4.7: a stateful scan over the compressed
// stream that classifies each command, resolves opcode aliases, and emits
// pixels into dst with bottom-up scanline semantics.
func Decode[T Pixel](f Format[T], dst []byte, width, height int, src []byte, counters *metrics.Counters) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid dimensions %dx%d", width, height)
	}
	if len(dst) < width*height*f.BytesPerPixel {
		return fmt.Errorf("raster: destination buffer too small")
	}

	e := &engine[T]{
		f:          f,
		c:          NewCursor(src),
		dst:        dst,
		width:      width,
		x:          width, // forces a scanline advance on the first pixel
		height:     height,
		lastOpcode: -1,
		mix:        f.White,
		counters:   counters,
	}

	for !e.c.AtEnd() {
		e.mask.fomMask = 0
		e.mask.mixmask = 0

		code, err := e.c.ReadByte()
		if err != nil {
			return err
		}
		op, count, _, err := classify(e.c, code)
		if err != nil {
			return err
		}
		op, err = e.resolveAlias(op)
		if err != nil {
			return err
		}

		if op == int(OpFill) {
			if e.lastOpcode == int(OpFill) && !(e.x == e.width && !e.havePrev) {
				e.insertMix = true
			}
		}
		e.lastOpcode = op
		e.counters.Opcode(op)

		if err := e.run(op, count); err != nil {
			return err
		}
	}

	e.counters.Consumed(e.c.Pos())
	return nil
}

// resolveAlias performs the post-classification opcode aliasing of §4.1:
// reading any immediate colour/mix operands and rewriting opcode 6/7/9/10
// to their canonical 1/2/2/2 form.
func (e *engine[T]) resolveAlias(op int) (int, error) {
	switch op {
	case opSetMixMix:
		v, err := readNativePixel(e.c, e.f)
		if err != nil {
			return 0, err
		}
		e.mix = v
		op = int(OpMix)
	case opSetMixFOM:
		v, err := readNativePixel(e.c, e.f)
		if err != nil {
			return 0, err
		}
		e.mix = v
		op = int(OpFillOrMix)
	case opFillOrMix1:
		e.mask.mask = 0x03
		e.mask.fomMask = 3
		op = int(OpFillOrMix)
	case opFillOrMix2:
		e.mask.mask = 0x05
		e.mask.fomMask = 5
		op = int(OpFillOrMix)
	case int(OpBicolour):
		v1, err := readNativePixel(e.c, e.f)
		if err != nil {
			return 0, err
		}
		e.colour1 = v1
		v2, err := readNativePixel(e.c, e.f)
		if err != nil {
			return 0, err
		}
		e.colour2 = v2
	case int(OpColor):
		v2, err := readNativePixel(e.c, e.f)
		if err != nil {
			return 0, err
		}
		e.colour2 = v2
	}
	return op, nil
}

// run executes one classified command against count pixels, advancing
// scanlines as needed (§4.4) and dispatching to the per-opcode semantics
// of §4.2.
func (e *engine[T]) run(op, count int) error {
	for count > 0 {
		if e.x >= e.width {
			if err := e.advanceLine(); err != nil {
				return err
			}
		}

		switch Opcode(op) {
		case OpFill:
			if e.insertMix {
				e.writePixel(e.above() ^ e.mix)
				e.insertMix = false
				count--
				if count == 0 {
					break
				}
				if e.x >= e.width {
					if err := e.advanceLine(); err != nil {
						return err
					}
				}
			}
			e.writePixel(e.above())
			count--

		case OpMix:
			e.writePixel(e.above() ^ e.mix)
			count--

		case OpFillOrMix:
			set, refilled, err := e.mask.next(e.c)
			if err != nil {
				return err
			}
			if refilled {
				e.counters.MaskRefill()
			}
			if set {
				e.writePixel(e.above() ^ e.mix)
			} else {
				e.writePixel(e.above())
			}
			count--

		case OpColor:
			e.writePixel(e.colour2)
			count--

		case OpCopy:
			v, err := readNativePixel(e.c, e.f)
			if err != nil {
				return err
			}
			e.writePixel(v)
			count--

		case OpBicolour:
			if !e.bicolour {
				e.writePixel(e.colour1)
				e.bicolour = true
				count++
			} else {
				e.writePixel(e.colour2)
				e.bicolour = false
			}
			count--

		case OpWhite:
			e.writePixel(e.f.White)
			count--

		case OpBlack:
			e.writePixel(e.f.Black)
			count--

		default:
			return fmt.Errorf("%w: 0x%x", ErrUnknownOpcode, op)
		}
	}
	return nil
}

// above returns the pixel at the current column in the previous scanline,
// or the zero value when there is no previous scanline (§4.2).
func (e *engine[T]) above() T {
	if !e.havePrev {
		var zero T
		return zero
	}
	return e.f.Read(e.dst, e.prevOff+e.x*e.f.BytesPerPixel)
}

// writePixel stores v at the current (line, x) and advances the column.
func (e *engine[T]) writePixel(v T) {
	e.f.Write(e.dst, e.lineOff+e.x*e.f.BytesPerPixel, v)
	e.x++
	e.counters.Pixels(1)
}

// advanceLine implements the bottom-up scanline transition of §4.4.
func (e *engine[T]) advanceLine() error {
	if e.height <= 0 {
		return ErrOverrun
	}
	e.x = 0
	e.height--
	if e.haveLine {
		e.prevOff = e.lineOff
		e.havePrev = true
	}
	e.lineOff = e.height * e.width * e.f.BytesPerPixel
	e.haveLine = true
	e.counters.ScanlineAdvance()
	return nil
}

// readNativePixel reads one native-width pixel (BytesPerPixel bytes,
// little-endian) directly from the compressed stream — used for Copy
// pixels and for the colour1/colour2/mix immediate operands.
func readNativePixel[T Pixel](c *Cursor, f Format[T]) (T, error) {
	raw, err := c.ReadBytes(f.BytesPerPixel)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.Read(raw, 0), nil
}
