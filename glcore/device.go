package glcore

import "log/slog"

// Device is the producer-facing external interface (§6): it owns the
// GL-owning execution context and consumes init-step and frame-step
// lists submitted by the surrounding renderer. All methods run on the
// single thread that owns the underlying graphics context (§5); Device
// provides no internal locking.
type Device struct {
	drv   api
	probe FeatureProbe
	log   diagLogger

	handles *handleCache
	binder  *fbBinder
	state   BinderState

	globalVAO uint32
}

// NewDevice constructs a Device from an already-current GL context. The
// caller is responsible for window/context creation (out of scope per
// §1). NewDevice does not query the driver itself: it takes an
// already-built probe (see ProbeFeatures), selects the driver binding
// from it, and allocates the process-wide binding state.
func NewDevice(probe FeatureProbe, logger *slog.Logger) *Device {
	drv := newAPI(probe)
	d := &Device{
		drv:   drv,
		probe: probe,
		log:   newDiagLogger(logger),
	}
	d.handles = newHandleCache(drv, probe.maxAnisotropy)
	d.binder = newFBBinder(drv, &d.state, probe)
	return d
}

// SetDefaultFBO records the host-provided backbuffer handle (§6).
func (d *Device) SetDefaultFBO(handle uint32) { d.state.SetDefaultFBO(handle) }

// SetTargetSize records the backbuffer dimensions used to Y-flip
// viewport/scissor when no framebuffer is bound (§6).
func (d *Device) SetTargetSize(width, height int32) { d.state.SetTargetSize(width, height) }

// CreateDeviceObjects is an idempotent lifecycle bookend. It allocates
// the process-wide vertex array object used as a client-array stand-in
// for the whole render pass (§4.2, §9 "Global VAO as state anchor").
func (d *Device) CreateDeviceObjects() {
	if d.globalVAO != 0 {
		return
	}
	d.globalVAO = d.drv.GenVertexArray()
}

// DestroyDeviceObjects is an idempotent lifecycle bookend. After it
// returns, the texture-name cache is drained and the global VAO is
// released (§6).
func (d *Device) DestroyDeviceObjects() {
	d.handles.drain()
	if d.globalVAO != 0 {
		d.drv.DeleteVertexArray(d.globalVAO)
		d.globalVAO = 0
	}
}

// AllocTextureName returns a pre-generated texture name from a pool
// refilled in batches of 16 (§6, §8 scenario 6).
func (d *Device) AllocTextureName() uint32 { return d.handles.AllocTextureName() }

// LogSteps is a diagnostic placeholder (§6): the surrounding renderer
// may call it to have the core describe a step list without executing
// it. The core does not parse or reorder steps when logging.
func (d *Device) LogSteps(steps []InitStep) {
	for _, s := range steps {
		d.log.Logf("glcore: step %T", s)
	}
}
