package raster

// maskState implements the Fill-Or-Mix rotating bitmask (§4.3): an 8-bit
// mask refilled either from the input stream or from a fixed constant set
// by the FillOrMix_1/FillOrMix_2 opcodes, consulted one bit at a time via
// an independently-rotating `mixmask` pointer.
type maskState struct {
	mask    byte
	mixmask byte
	fomMask byte // non-zero overrides stream refill with this fixed value
}

// next rotates mixmask and, on wraparound, refills mask — either from
// fomMask (when set by FillOrMix_1/_2) or by reading one byte from the
// cursor. It returns whether the rotated bit is set, i.e. whether this
// pixel should be emitted as a Mix pixel rather than a Fill pixel, and
// whether a refill actually occurred on this call.
func (m *maskState) next(c *Cursor) (set bool, refilled bool, err error) {
	m.mixmask <<= 1
	if m.mixmask == 0 {
		if m.fomMask != 0 {
			m.mask = m.fomMask
		} else {
			b, e := c.ReadByte()
			if e != nil {
				return false, false, e
			}
			m.mask = b
		}
		m.mixmask = 1
		refilled = true
	}
	return m.mask&m.mixmask != 0, refilled, nil
}
