package raster

import "testing"

func TestCursorReadByte(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})

	b, err := c.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte failed: %v", err)
	}
	if b != 0x01 {
		t.Errorf("expected 0x01, got 0x%x", b)
	}
	if c.Pos() != 1 {
		t.Errorf("expected pos 1, got %d", c.Pos())
	}
}

func TestCursorReadByteUnderflow(t *testing.T) {
	c := NewCursor(nil)

	if _, err := c.ReadByte(); err != ErrUnderflow {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
}

func TestCursorReadUint16LE(t *testing.T) {
	c := NewCursor([]byte{0x34, 0x12})

	v, err := c.ReadUint16LE()
	if err != nil {
		t.Fatalf("ReadUint16LE failed: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%x", v)
	}
}

func TestCursorReadUint16LEUnderflow(t *testing.T) {
	c := NewCursor([]byte{0x01})

	if _, err := c.ReadUint16LE(); err != ErrUnderflow {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
}

func TestCursorReadBytes(t *testing.T) {
	c := NewCursor([]byte{0xAA, 0xBB, 0xCC, 0xDD})

	b, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if len(b) != 3 || b[0] != 0xAA || b[2] != 0xCC {
		t.Errorf("unexpected bytes: %v", b)
	}
	if c.Remaining() != 1 {
		t.Errorf("expected 1 byte remaining, got %d", c.Remaining())
	}
}

func TestCursorReadBytesUnderflow(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})

	if _, err := c.ReadBytes(3); err != ErrUnderflow {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
}

func TestCursorAtEnd(t *testing.T) {
	c := NewCursor([]byte{0x01})
	if c.AtEnd() {
		t.Fatal("expected not at end")
	}
	if _, err := c.ReadByte(); err != nil {
		t.Fatalf("ReadByte failed: %v", err)
	}
	if !c.AtEnd() {
		t.Fatal("expected at end")
	}
}
