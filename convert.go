package rdpbitmap

// convert.go implements the native-raster -> RGBA8888 color conversion
// contract of spec §4.6. Each converter walks min(output, input) rows and
// columns; pixels outside that overlap are left untouched in dst.

func expand5(c uint32) byte {
	return byte(c * 255 / 31)
}

func expand6(c uint32) byte {
	return byte(c * 255 / 63)
}

// convert15 unpacks RGB555 scratch pixels (native, 2 bytes each) into RGBA.
func convert15(dst []byte, outW, outH int, native []byte, inW, inH int) {
	w, h := minInt(outW, inW), minInt(outH, inH)
	for y := 0; y < h; y++ {
		srcRow := y * inW * 2
		dstRow := y * outW * 4
		for x := 0; x < w; x++ {
			p := uint32(native[srcRow+x*2]) | uint32(native[srcRow+x*2+1])<<8
			r := expand5((p >> 10) & 0x1F)
			g := expand5((p >> 5) & 0x1F)
			b := expand5(p & 0x1F)
			o := dstRow + x*4
			dst[o+0], dst[o+1], dst[o+2], dst[o+3] = r, g, b, 255
		}
	}
}

// convert16 unpacks RGB565 scratch pixels into RGBA.
func convert16(dst []byte, outW, outH int, native []byte, inW, inH int) {
	w, h := minInt(outW, inW), minInt(outH, inH)
	for y := 0; y < h; y++ {
		srcRow := y * inW * 2
		dstRow := y * outW * 4
		for x := 0; x < w; x++ {
			p := uint32(native[srcRow+x*2]) | uint32(native[srcRow+x*2+1])<<8
			r := expand5((p >> 11) & 0x1F)
			g := expand6((p >> 5) & 0x3F)
			b := expand5(p & 0x1F)
			o := dstRow + x*4
			dst[o+0], dst[o+1], dst[o+2], dst[o+3] = r, g, b, 255
		}
	}
}

// convert24 reinterprets BGR triples (native, 3 bytes each) as RGBA.
func convert24(dst []byte, outW, outH int, native []byte, inW, inH int) {
	w, h := minInt(outW, inW), minInt(outH, inH)
	for y := 0; y < h; y++ {
		srcRow := y * inW * 3
		dstRow := y * outW * 4
		for x := 0; x < w; x++ {
			s := srcRow + x*3
			b, g, r := native[s], native[s+1], native[s+2]
			o := dstRow + x*4
			dst[o+0], dst[o+1], dst[o+2], dst[o+3] = r, g, b, 255
		}
	}
}

// convert32 reinterprets BGRA quads (native, 4 bytes each, channel-planar
// decode order per plane.go) as RGBA.
func convert32(dst []byte, outW, outH int, native []byte, inW, inH int) {
	w, h := minInt(outW, inW), minInt(outH, inH)
	for y := 0; y < h; y++ {
		srcRow := y * inW * 4
		dstRow := y * outW * 4
		for x := 0; x < w; x++ {
			s := srcRow + x*4
			b, g, r, a := native[s], native[s+1], native[s+2], native[s+3]
			o := dstRow + x*4
			dst[o+0], dst[o+1], dst[o+2], dst[o+3] = r, g, b, a
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
