// Package metrics provides optional, in-process decode counters for the
// RDP bitmap codec. There is no external sink here — no Prometheus client,
// no StatsD — the codec is a pure synchronous function and has nowhere to
// publish metrics to (see DESIGN.md for why no metrics SDK is wired in);
// this package exists so a caller that embeds the decoder in a larger RDP
// client can inspect what a decode actually did without instrumenting the
// hot loop itself.
package metrics

// Counters accumulates per-call decode statistics. The zero value is ready
// to use. A nil *Counters is accepted everywhere it's threaded through, so
// collecting metrics is opt-in and free when the caller doesn't want it.
type Counters struct {
	// OpcodeCount is indexed by the post-aliasing opcode value (0-15).
	OpcodeCount      [16]uint64
	PixelsWritten    uint64
	BytesConsumed    uint64
	MaskRefills      uint64
	ScanlineAdvances uint64
}

// Opcode records one dispatch of the given post-aliasing opcode.
func (c *Counters) Opcode(op int) {
	if c == nil {
		return
	}
	if op >= 0 && op < len(c.OpcodeCount) {
		c.OpcodeCount[op]++
	}
}

// Pixels records n additional pixels written to the raster.
func (c *Counters) Pixels(n int) {
	if c == nil {
		return
	}
	c.PixelsWritten += uint64(n)
}

// MaskRefill records one rotating-mask refill: the 8-bit Fill-Or-Mix mask
// wrapping around and being reloaded, from the stream or from a fixed
// FillOrMix_1/_2 constant. It does not fire on every Fill-Or-Mix pixel,
// only on the first pixel of each Fill-Or-Mix command and on every eighth
// pixel after that, the ones that actually trigger a reload.
func (c *Counters) MaskRefill() {
	if c == nil {
		return
	}
	c.MaskRefills++
}

// ScanlineAdvance records one bottom-up scanline transition.
func (c *Counters) ScanlineAdvance() {
	if c == nil {
		return
	}
	c.ScanlineAdvances++
}

// Consumed records the total number of compressed input bytes read.
func (c *Counters) Consumed(n int) {
	if c == nil {
		return
	}
	c.BytesConsumed = uint64(n)
}
