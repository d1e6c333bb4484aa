package codec

import "sync"

// Registry manages the set of available depth codecs, keyed by both name
// and bits-per-pixel. Grounded on the retrieved DICOM codec package's
// Registry (codec/registry.go), generalized from a name/UID key pair to a
// name/depth key pair.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Codec
	byDepth map[int]Codec
}

var defaultRegistry = NewRegistry()

// NewRegistry constructs a registry populated with the four
// standard depth codecs (15/16/24/32bpp).
func NewRegistry() *Registry {
	r := &Registry{
		byName:  make(map[string]Codec),
		byDepth: make(map[int]Codec),
	}
	r.Register(New15())
	r.Register(New16())
	r.Register(New24())
	r.Register(New32())
	return r
}

// Register adds a codec to the default registry, keyed by both name and depth.
func Register(c Codec) { defaultRegistry.Register(c) }

// Get retrieves a codec by name from the default registry.
func Get(name string) (Codec, error) { return defaultRegistry.Get(name) }

// GetByDepth retrieves a codec by bits-per-pixel from the default registry.
func GetByDepth(depth int) (Codec, error) { return defaultRegistry.GetByDepth(depth) }

// List returns all codecs registered in the default registry.
func List() []Codec { return defaultRegistry.List() }

// Register adds a codec, keyed by both its name and its depth.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[c.Name()] = c
	r.byDepth[c.Depth()] = c
}

// Get retrieves a codec by name.
func (r *Registry) Get(name string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return c, nil
}

// GetByDepth retrieves a codec by bits-per-pixel.
func (r *Registry) GetByDepth(depth int) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byDepth[depth]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return c, nil
}

// List returns all distinct registered codecs.
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[Codec]bool, len(r.byDepth))
	out := make([]Codec, 0, len(r.byDepth))
	for _, c := range r.byDepth {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
