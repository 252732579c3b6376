package glcore

// textureNamePoolBatch is the number of texture names generated per
// refill, per §2/§8 ("pre-allocated pools of texture names (size 16)").
const textureNamePoolBatch = 16

// handleCache pre-allocates texture names in batches and tracks the
// anisotropy ceiling reported by the driver. It is owned exclusively by
// the executor thread (§5).
type handleCache struct {
	drv   api
	names []uint32 // unused names, refilled in batches when drained.

	maxAnisotropy float32
}

func newHandleCache(drv api, maxAnisotropy float32) *handleCache {
	return &handleCache{drv: drv, maxAnisotropy: maxAnisotropy}
}

// AllocTextureName returns a pre-generated texture name from the pool,
// refilling in batches of textureNamePoolBatch when exhausted.
func (h *handleCache) AllocTextureName() uint32 {
	if len(h.names) == 0 {
		h.refill()
	}
	n := h.names[len(h.names)-1]
	h.names = h.names[:len(h.names)-1]
	return n
}

func (h *handleCache) refill() {
	batch := make([]uint32, textureNamePoolBatch)
	for i := range batch {
		batch[i] = h.drv.GenTexture()
	}
	h.names = append(h.names, batch...)
}

// drain releases every unused pre-generated name, called from
// DestroyDeviceObjects.
func (h *handleCache) drain() {
	for _, n := range h.names {
		h.drv.DeleteTexture(n)
	}
	h.names = h.names[:0]
}

// BinderState caches the currently bound draw/read framebuffer handles
// and the backbuffer dimensions used to Y-flip viewport/scissor when no
// framebuffer is bound. g_defaultFBO is the one field the host embedding
// layer (e.g. an emulator frontend supplying its own compositor FBO)
// mutates directly; the core only ever reads it, and only at unbind
// time (§5, §6).
type BinderState struct {
	currentDrawHandle_ uint32
	currentReadHandle_ uint32

	// g_defaultFBO is written by the host before any step that may
	// unbind to the backbuffer. Default 0.
	g_defaultFBO uint32

	targetWidth_, targetHeight_ int32
}

// SetDefaultFBO sets the host-provided backbuffer handle consulted at
// unbind time.
func (s *BinderState) SetDefaultFBO(handle uint32) { s.g_defaultFBO = handle }

// SetTargetSize records the backbuffer dimensions used for the
// default-framebuffer Y-flip.
func (s *BinderState) SetTargetSize(width, height int32) {
	s.targetWidth_, s.targetHeight_ = width, height
}
