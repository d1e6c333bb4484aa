package codec

import "testing"

func TestNewRegistryPopulatesStandardDepths(t *testing.T) {
	r := NewRegistry()
	for _, depth := range []int{15, 16, 24, 32} {
		c, err := r.GetByDepth(depth)
		if err != nil {
			t.Fatalf("GetByDepth(%d) failed: %v", depth, err)
		}
		if c.Depth() != depth {
			t.Errorf("GetByDepth(%d) returned a codec for depth %d", depth, c.Depth())
		}
	}
}

func TestRegistryGetUnknownName(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nonexistent"); err != ErrCodecNotFound {
		t.Fatalf("expected ErrCodecNotFound, got %v", err)
	}
}

func TestRegistryGetByDepthUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.GetByDepth(8); err != ErrCodecNotFound {
		t.Fatalf("expected ErrCodecNotFound, got %v", err)
	}
}

func TestRegistryListReturnsFourDistinctCodecs(t *testing.T) {
	r := NewRegistry()
	codecs := r.List()
	if len(codecs) != 4 {
		t.Fatalf("expected 4 registered codecs, got %d", len(codecs))
	}
}

func TestDefaultRegistryPackageFunctions(t *testing.T) {
	c, err := Get("RDP RLE 16bpp")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if c.Depth() != 16 {
		t.Errorf("expected depth 16, got %d", c.Depth())
	}

	if _, err := GetByDepth(24); err != nil {
		t.Fatalf("GetByDepth(24) failed: %v", err)
	}

	if len(List()) != 4 {
		t.Errorf("expected 4 codecs in the default registry, got %d", len(List()))
	}
}
