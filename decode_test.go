package rdpbitmap

import (
	"bytes"
	"testing"

	"github.com/rdpbitmap/codec/metrics"
)

func TestDecode16SinglePixel(t *testing.T) {
	src := []byte{0xFD} // White, count=1
	output := make([]byte, 4)
	counters := &metrics.Counters{}
	if !Decode16(output, 1, 1, 1, 1, src, Options{Counters: counters}) {
		t.Fatal("Decode16 reported failure")
	}
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(output, want) {
		t.Errorf("got % x, want % x", output, want)
	}
	if counters.PixelsWritten != 1 {
		t.Errorf("expected 1 pixel counted, got %d", counters.PixelsWritten)
	}
}

func TestDecode15SinglePixel(t *testing.T) {
	src := []byte{0xFD}
	output := make([]byte, 4)
	if !Decode15(output, 1, 1, 1, 1, src, Options{}) {
		t.Fatal("Decode15 reported failure")
	}
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(output, want) {
		t.Errorf("got % x, want % x", output, want)
	}
}

func TestDecode24SinglePixel(t *testing.T) {
	src := []byte{0xFD}
	output := make([]byte, 4)
	if !Decode24(output, 1, 1, 1, 1, src, Options{}) {
		t.Fatal("Decode24 reported failure")
	}
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(output, want) {
		t.Errorf("got % x, want % x", output, want)
	}
}

func TestDecode32SinglePixel(t *testing.T) {
	src := []byte{
		0x10,       // plane header
		0x10, 0xAA, // A
		0x10, 0x10, // R
		0x10, 0x20, // G
		0x10, 0x30, // B
	}
	output := make([]byte, 4)
	if !Decode32(output, 1, 1, 1, 1, src, Options{}) {
		t.Fatal("Decode32 reported failure")
	}
	want := []byte{0x10, 0x20, 0x30, 0xAA}
	if !bytes.Equal(output, want) {
		t.Errorf("got % x, want % x", output, want)
	}
}

func TestDecodeRejectsInvalidDimensions(t *testing.T) {
	output := make([]byte, 4)
	if Decode16(output, 0, 1, 1, 1, []byte{0xFD}, Options{}) {
		t.Error("expected Decode16 to fail on zero output width")
	}
	if Decode32(output, 1, 1, -1, 1, []byte{}, Options{}) {
		t.Error("expected Decode32 to fail on negative input width")
	}
}

func TestDecodeFailsOnMalformedStream(t *testing.T) {
	output := make([]byte, 4)
	// hi=0xA classifies to an opcode this engine doesn't implement.
	if Decode16(output, 1, 1, 1, 1, []byte{0xA1}, Options{}) {
		t.Error("expected Decode16 to fail on an unknown opcode")
	}
}

func TestAllocScratchOverflow(t *testing.T) {
	if _, ok := allocScratch(1<<31, 1<<31, 4); ok {
		t.Error("expected allocScratch to reject an overflowing size")
	}
	if _, ok := allocScratch(2, 3, 4); !ok {
		t.Error("expected allocScratch to accept a small size")
	}
}
