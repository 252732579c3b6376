package glcore

import "fmt"

// GL enum values needed by the framebuffer builder and binder. These
// are stable across the ARB/core, EXT, and ES dialects (the EXT_* and
// OES_* extensions that introduced them were later promoted into core
// unchanged), so framebuffer.go never needs to import a dialect-specific
// gl package directly — it only talks to the driver through api.
const (
	glRGBA            = 0x1908
	glRGBA8            = 0x8058
	glUnsignedByte     = 0x1401

	glColorAttachment0   = 0x8CE0
	glDepthAttachment    = 0x8D00
	glStencilAttachment  = 0x8D20
	glDepthStencilAttach = 0x821A

	glDepthStencil        = 0x84F9
	glDepth24Stencil8     = 0x88F0
	glDepth24Stencil8OES  = 0x88F0
	glDepthComponent      = 0x1902
	glDepthComponent16    = 0x81A5
	glDepthComponent24OES = 0x81A6
	glStencilIndex8       = 0x8D48

	glTexture2D    = 0x0DE1
	glTextureWrapS = 0x2802
	glTextureWrapT = 0x2803
	glTextureMinFilter = 0x2801
	glTextureMagFilter = 0x2800
	glClampToEdge  = 0x812F
	glLinear       = 0x2601

	glFramebufferComplete                   = 0x8CD5
	glFramebufferIncompleteAttachment        = 0x8CD6
	glFramebufferIncompleteMissingAttachment = 0x8CD7
	glFramebufferUnsupported                 = 0x8CDD
)

// Framebuffer is a color + depth/stencil render target. Exactly one of
// the two depth/stencil configurations is populated (§3 invariant).
// Unlike the other resource records, Framebuffer carries an explicit
// destructor: it is the only one whose cleanup must route through the
// same ARB/EXT dialect used at creation.
type Framebuffer struct {
	handle uint32
	Width, Height int32

	Color Texture

	// Packed configuration.
	zStencilBuffer uint32

	// Separate configuration.
	zBuffer       uint32
	stencilBuffer uint32

	drv api
}

// Delete releases the color texture, renderbuffer(s), and framebuffer
// object through the dialect used to create them.
func (f *Framebuffer) Delete() {
	if f.Color.Handle != 0 {
		f.drv.DeleteTexture(f.Color.Handle)
	}
	if f.zStencilBuffer != 0 {
		f.drv.DeleteRenderbuffer(f.zStencilBuffer)
	}
	if f.zBuffer != 0 {
		f.drv.DeleteRenderbuffer(f.zBuffer)
	}
	if f.stencilBuffer != 0 {
		f.drv.DeleteRenderbuffer(f.stencilBuffer)
	}
	if f.handle != 0 {
		f.drv.DeleteFramebuffer(f.handle)
	}
}

// fbBinder owns the process-wide draw/read cached handles and
// suppresses redundant bind calls. When blit is unsupported, both the
// draw and read targets alias a single cached handle against the
// combined target (§4.3).
type fbBinder struct {
	drv    api
	state  *BinderState
	canSplit bool
}

func newFBBinder(drv api, state *BinderState, probe FeatureProbe) *fbBinder {
	return &fbBinder{drv: drv, state: state, canSplit: probe.blitSupported()}
}

// BindDraw binds fb as the draw target, suppressing the call when the
// cached handle already matches.
func (b *fbBinder) BindDraw(fb *Framebuffer) {
	handle := fbHandle(fb)
	if b.state.currentDrawHandle_ == handle {
		return
	}
	b.drv.BindDrawFramebuffer(handle)
	b.state.currentDrawHandle_ = handle
	if !b.canSplit {
		b.state.currentReadHandle_ = handle
	}
}

// BindRead binds fb as the read target, suppressing the call when the
// cached handle already matches.
func (b *fbBinder) BindRead(fb *Framebuffer) {
	handle := fbHandle(fb)
	if b.state.currentReadHandle_ == handle {
		return
	}
	b.drv.BindReadFramebuffer(handle)
	b.state.currentReadHandle_ = handle
	if !b.canSplit {
		b.state.currentDrawHandle_ = handle
	}
}

// Bind binds fb as both the draw and read target — the common case for
// render passes, which do not themselves split targets.
func (b *fbBinder) Bind(fb *Framebuffer) {
	b.BindDraw(fb)
	b.BindRead(fb)
}

// Unbind binds the host-provided default framebuffer and resets both
// cached handles.
func (b *fbBinder) Unbind() {
	handle := b.state.g_defaultFBO
	b.drv.BindDrawFramebuffer(handle)
	b.drv.BindReadFramebuffer(handle)
	b.state.currentDrawHandle_ = 0
	b.state.currentReadHandle_ = 0
}

func fbHandle(fb *Framebuffer) uint32 {
	if fb == nil {
		return 0
	}
	return fb.handle
}

// buildFramebuffer allocates a framebuffer, a color texture, and a
// depth/stencil attachment laid out per §4.3's dialect table, then
// checks completeness and logs on failure. Both the binder's cached
// handles are set to the new handle on return, matching the source's
// assumption that a freshly built framebuffer is immediately current.
func buildFramebuffer(drv api, probe FeatureProbe, binder *fbBinder, width, height int32, log diagLogger) *Framebuffer {
	fb := &Framebuffer{drv: drv, Width: width, Height: height}
	fb.handle = drv.GenFramebuffer()
	binder.Bind(fb)

	fb.Color = Texture{
		Handle: drv.GenTexture(),
		Target: glTexture2D,
		Width:  width,
		Height: height,
		Format: glRGBA,
		Type:   glUnsignedByte,
	}
	drv.BindTexture(0, glTexture2D, fb.Color.Handle)
	drv.TexImage2D(glTexture2D, 0, width, height, glRGBA, glUnsignedByte, nil)
	drv.TexParameteri(glTexture2D, glTextureWrapS, glClampToEdge)
	drv.TexParameteri(glTexture2D, glTextureWrapT, glClampToEdge)
	drv.TexParameteri(glTexture2D, glTextureMinFilter, glLinear)
	drv.TexParameteri(glTexture2D, glTextureMagFilter, glLinear)
	drv.FramebufferTexture2D(glColorAttachment0, fb.Color.Handle)

	switch {
	case probe.isGLES && probe.oesPackedDepthStencil:
		fb.zStencilBuffer = newRenderbuffer(drv, glDepth24Stencil8OES, width, height)
		drv.FramebufferRenderbuffer(glDepthAttachment, fb.zStencilBuffer)
		drv.FramebufferRenderbuffer(glStencilAttachment, fb.zStencilBuffer)
	case probe.isGLES:
		depthFormat := uint32(glDepthComponent16)
		if probe.oesDepth24 {
			depthFormat = glDepthComponent24OES
		}
		fb.zBuffer = newRenderbuffer(drv, depthFormat, width, height)
		drv.FramebufferRenderbuffer(glDepthAttachment, fb.zBuffer)
		fb.stencilBuffer = newRenderbuffer(drv, glStencilIndex8, width, height)
		drv.FramebufferRenderbuffer(glStencilAttachment, fb.stencilBuffer)
	default:
		// Desktop: packed DEPTH24_STENCIL8 is assumed available.
		fb.zStencilBuffer = newRenderbuffer(drv, glDepth24Stencil8, width, height)
		drv.FramebufferRenderbuffer(glDepthAttachment, fb.zStencilBuffer)
		drv.FramebufferRenderbuffer(glStencilAttachment, fb.zStencilBuffer)
	}

	if status := drv.CheckFramebufferStatus(); status != glFramebufferComplete {
		log.Logf("glcore: framebuffer incomplete: %s", framebufferStatusString(status))
	}

	// Unbind renderbuffer and texture scratch bindings.
	drv.BindRenderbuffer(0)
	drv.BindTexture(0, glTexture2D, 0)

	binder.state.currentDrawHandle_ = fb.handle
	binder.state.currentReadHandle_ = fb.handle
	return fb
}

func newRenderbuffer(drv api, internalformat uint32, width, height int32) uint32 {
	rb := drv.GenRenderbuffer()
	drv.BindRenderbuffer(rb)
	drv.RenderbufferStorage(internalformat, width, height)
	return rb
}

func framebufferStatusString(status uint32) string {
	switch status {
	case glFramebufferUnsupported:
		return "unsupported"
	case glFramebufferIncompleteAttachment:
		return "incomplete attachment"
	case glFramebufferIncompleteMissingAttachment:
		return "incomplete missing attachment"
	default:
		return fmt.Sprintf("other(0x%X)", status)
	}
}
