package glcore

// Additional GL enums used only by the render interpreter and not
// already declared in framebuffer.go.
const (
	glDepthTest   = 0x0B71
	glBlend       = 0x0BE2
	glScissorTest = 0x0C11
	glCullFaceCap = 0x0B44
	glDither      = 0x0BD0

	glColorBufferBit   = 0x00004000
	glDepthBufferBit   = 0x00000100
	glStencilBufferBit = 0x00000400

	glTriangles = 0x0004
)

// passState is the transient state that exists only for the duration
// of one RENDER step (§3 "Per-pass transient state"). It is reset on
// pass entry and torn down on exit.
type passState struct {
	curFB                *Framebuffer
	curFBWidth, curFBHeight int32

	curProgram *Program

	activeTexture int // texture unit at rest = 0.
	boundTexture  uint32

	attrMask uint32

	curArrayBuffer     uint32
	curElemArrayBuffer uint32
}

// RenderCommand is the sum type of the ~23 command kinds executed
// inside one RENDER step (§4.2). Like InitStep, each variant is its own
// Go type carrying only the fields it uses.
type RenderCommand interface {
	runRender(d *Device, ps *passState)
}

// RenderStep is one frame step: an ordered list of commands executed
// against Target (nil selects the default framebuffer).
type RenderStep struct {
	Target   *Framebuffer
	Commands []RenderCommand
}

// DepthCmd toggles depth test and, when enabled, sets the write mask
// and comparison function.
type DepthCmd struct {
	Enable     bool
	WriteMask  bool
	Func       uint32
}

func (c DepthCmd) runRender(d *Device, ps *passState) {
	if c.Enable {
		d.drv.Enable(glDepthTest)
		d.drv.DepthMask(c.WriteMask)
		d.drv.DepthFunc(c.Func)
		return
	}
	d.drv.Disable(glDepthTest)
}

// BlendCmd toggles blending and, when enabled, sets separate color/alpha
// equations and factors. The color write mask is always set from the
// low four bits of Mask (bit i selects channel i), regardless of
// whether blending is enabled.
type BlendCmd struct {
	Enable               bool
	ColorEq, AlphaEq     uint32
	SrcRGB, DstRGB       uint32
	SrcAlpha, DstAlpha   uint32
	Mask                 uint8
}

func (c BlendCmd) runRender(d *Device, ps *passState) {
	if c.Enable {
		d.drv.Enable(glBlend)
		d.drv.BlendEquationSeparate(c.ColorEq, c.AlphaEq)
		d.drv.BlendFuncSeparate(c.SrcRGB, c.DstRGB, c.SrcAlpha, c.DstAlpha)
	} else {
		d.drv.Disable(glBlend)
	}
	d.drv.ColorMask(c.Mask&1 != 0, c.Mask&2 != 0, c.Mask&4 != 0, c.Mask&8 != 0)
}

// ClearMask selects which channels a ClearCmd touches.
type ClearMask uint32

const (
	ClearColor   ClearMask = 1 << 0
	ClearDepthF  ClearMask = 1 << 1
	ClearStencilF ClearMask = 1 << 2
)

// ClearCmd briefly disables scissor, forces a full color write mask,
// sets clear values only for the channels in ClearMask, issues the
// clear, then restores scissor (§4.2, §8 scenario 2). ColorRGBA packs
// the clear color as a 32-bit byte quad (R,G,B,A from low to high
// byte); it is unpacked to four normalized floats here.
type ClearCmd struct {
	Mask       ClearMask
	ColorRGBA  uint32
	Depth      float64
	Stencil    int32
}

func (c ClearCmd) runRender(d *Device, ps *passState) {
	d.drv.Disable(glScissorTest)
	d.drv.ColorMask(true, true, true, true)

	var mask uint32
	if c.Mask&ClearColor != 0 {
		r, g, b, a := unpackRGBA(c.ColorRGBA)
		d.drv.ClearColor(r, g, b, a)
		mask |= glColorBufferBit
	}
	if c.Mask&ClearDepthF != 0 {
		d.drv.ClearDepth(c.Depth)
		mask |= glDepthBufferBit
	}
	if c.Mask&ClearStencilF != 0 {
		d.drv.ClearStencil(c.Stencil)
		mask |= glStencilBufferBit
	}
	d.drv.Clear(mask)

	d.drv.Enable(glScissorTest)
}

// unpackRGBA converts a packed 32-bit RGBA byte quad into four
// normalized floats.
func unpackRGBA(v uint32) (r, g, b, a float32) {
	const scale = 1.0 / 255.0
	r = float32(v&0xFF) * scale
	g = float32((v>>8)&0xFF) * scale
	b = float32((v>>16)&0xFF) * scale
	a = float32((v>>24)&0xFF) * scale
	return
}

// BlendColorCmd sets the constant blend color.
type BlendColorCmd struct{ R, G, B, A float32 }

func (c BlendColorCmd) runRender(d *Device, ps *passState) { d.drv.BlendColor(c.R, c.G, c.B, c.A) }

// flipY implements §4.2's Y-flip invariant: offscreen targets use Y as
// given; the default backbuffer flips around its height.
func flipY(ps *passState, y, height int32) int32 {
	if ps.curFB != nil {
		return y
	}
	return ps.curFBHeight - y - height
}

// ViewportCmd sets the viewport and depth range, flipping Y when
// targeting the default backbuffer (§4.2, §8 scenario "Y-flip
// invariance").
type ViewportCmd struct {
	X, Y, Width, Height int32
	Near, Far           float64
}

func (c ViewportCmd) runRender(d *Device, ps *passState) {
	d.drv.Viewport(c.X, flipY(ps, c.Y, c.Height), c.Width, c.Height)
	d.drv.DepthRange(c.Near, c.Far)
}

// ScissorCmd sets the scissor rectangle, flipping Y the same way as
// ViewportCmd.
type ScissorCmd struct{ X, Y, Width, Height int32 }

func (c ScissorCmd) runRender(d *Device, ps *passState) {
	d.drv.Scissor(c.X, flipY(ps, c.Y, c.Height), c.Width, c.Height)
}

// resolveUniformLoc implements the shared location-resolution order for
// Uniform4f/Uniform4i/UniformMatrix4 (§4.2): a supplied non-nil cached
// pointer wins; otherwise fall back to a name lookup in the current
// program's uniform table. Returns -1 (skip) if neither resolves.
func resolveUniformLoc(ps *passState, locPtr *int32, name string) int32 {
	if locPtr != nil {
		return *locPtr
	}
	if ps.curProgram == nil {
		return -1
	}
	if loc, ok := ps.curProgram.UniformLocs[name]; ok {
		return loc
	}
	return -1
}

// Uniform4fCmd uploads Count (1..4) components of Value. A negative
// resolved location silently skips the upload (§8 "Uniform skip").
type Uniform4fCmd struct {
	LocPtr *int32
	Name   string
	Count  int32
	Value  [4]float32
}

func (c Uniform4fCmd) runRender(d *Device, ps *passState) {
	loc := resolveUniformLoc(ps, c.LocPtr, c.Name)
	if loc < 0 {
		return
	}
	d.drv.Uniform4f(loc, c.Count, c.Value)
}

// Uniform4iCmd is the integer counterpart of Uniform4fCmd.
type Uniform4iCmd struct {
	LocPtr *int32
	Name   string
	Count  int32
	Value  [4]int32
}

func (c Uniform4iCmd) runRender(d *Device, ps *passState) {
	loc := resolveUniformLoc(ps, c.LocPtr, c.Name)
	if loc < 0 {
		return
	}
	d.drv.Uniform4i(loc, c.Count, c.Value)
}

// UniformMatrix4Cmd uploads one 4x4 matrix.
type UniformMatrix4Cmd struct {
	LocPtr *int32
	Name   string
	Value  [16]float32
}

func (c UniformMatrix4Cmd) runRender(d *Device, ps *passState) {
	loc := resolveUniformLoc(ps, c.LocPtr, c.Name)
	if loc < 0 {
		return
	}
	d.drv.UniformMatrix4(loc, &c.Value)
}

// StencilFuncCmd toggles stencil test and, when enabled, sets func,
// reference, and compare mask.
type StencilFuncCmd struct {
	Enable bool
	Func   uint32
	Ref    int32
	Mask   uint32
}

const glStencilTest = 0x0B90

func (c StencilFuncCmd) runRender(d *Device, ps *passState) {
	if c.Enable {
		d.drv.Enable(glStencilTest)
		d.drv.StencilFunc(c.Func, c.Ref, c.Mask)
		return
	}
	d.drv.Disable(glStencilTest)
}

// StencilOpCmd sets the three-op tuple and write mask unconditionally
// (§4.2).
type StencilOpCmd struct {
	SFail, DPFail, DPPass uint32
	WriteMask             uint32
}

func (c StencilOpCmd) runRender(d *Device, ps *passState) {
	d.drv.StencilOp(c.SFail, c.DPFail, c.DPPass)
	d.drv.StencilMask(c.WriteMask)
}

const glTexture2DCmd = glTexture2D

// BindTextureCmd switches the active texture unit and binds (a nil Tex
// unbinds 2D). The driver's BindTexture always issues the unit switch
// itself, so ps.activeTexture is tracked only for runRenderStep's exit
// cleanup, not to suppress this call.
type BindTextureCmd struct {
	Unit int
	Tex  *Texture
}

func (c BindTextureCmd) runRender(d *Device, ps *passState) {
	handle := uint32(0)
	if c.Tex != nil {
		handle = c.Tex.Handle
	}
	d.drv.BindTexture(c.Unit, glTexture2DCmd, handle)
	ps.activeTexture = c.Unit
	ps.boundTexture = handle
}

// BindFBTextureCmd binds the color attachment of a framebuffer like
// BindTextureCmd (depth aspect reserved).
type BindFBTextureCmd struct {
	Unit int
	FB   *Framebuffer
}

func (c BindFBTextureCmd) runRender(d *Device, ps *passState) {
	handle := uint32(0)
	if c.FB != nil {
		handle = c.FB.Color.Handle
	}
	d.drv.BindTexture(c.Unit, glTexture2DCmd, handle)
	ps.activeTexture = c.Unit
	ps.boundTexture = handle
}

// BindProgramCmd sets the current program handle and updates
// ps.curProgram so later uniform lookups use its cache.
type BindProgramCmd struct{ Prog *Program }

func (c BindProgramCmd) runRender(d *Device, ps *passState) {
	handle := uint32(0)
	if c.Prog != nil {
		handle = c.Prog.Handle
	}
	d.drv.UseProgram(handle)
	ps.curProgram = c.Prog
}

// BindInputLayoutCmd computes the enable/disable attribute sets from
// the transition between the currently tracked mask and the layout's
// mask, updates attrMask, then sets each attribute pointer at
// layout.offset + entry.offset (§4.2, §8 scenario "Attribute
// transition").
type BindInputLayoutCmd struct {
	Layout     *InputLayout
	BaseOffset int32
}

func (c BindInputLayoutCmd) runRender(d *Device, ps *passState) {
	mask := c.Layout.SemanticsMask
	enable := mask &^ ps.attrMask
	disable := ps.attrMask &^ mask

	for i := uint32(0); i < maxAttribLocations; i++ {
		bit := uint32(1) << i
		if enable&bit != 0 {
			d.drv.EnableVertexAttribArray(i)
		}
		if disable&bit != 0 {
			d.drv.DisableVertexAttribArray(i)
		}
	}
	ps.attrMask = mask

	for _, e := range c.Layout.Entries {
		offset := uintptr(c.BaseOffset + e.Offset)
		d.drv.VertexAttribPointer(e.Location, e.Packing, e.Type, e.Normalized, e.Stride, offset)
	}
}

const (
	glArrayBufferCmd        = glArrayBuffer
	glElementArrayBufferCmd = 0x8893
)

// BindBufferCmd suppresses the bind for array-buffer and
// element-array-buffer targets when the requested handle matches the
// tracked one; other targets always bind (§4.2, §8 "State-change
// filtering").
type BindBufferCmd struct {
	Target uint32
	Buf    *Buffer
}

func (c BindBufferCmd) runRender(d *Device, ps *passState) {
	handle := uint32(0)
	if c.Buf != nil {
		handle = c.Buf.Handle
	}
	switch c.Target {
	case glArrayBufferCmd:
		if ps.curArrayBuffer == handle {
			return
		}
		d.drv.BindBuffer(c.Target, handle)
		ps.curArrayBuffer = handle
	case glElementArrayBufferCmd:
		if ps.curElemArrayBuffer == handle {
			return
		}
		d.drv.BindBuffer(c.Target, handle)
		ps.curElemArrayBuffer = handle
	default:
		d.drv.BindBuffer(c.Target, handle)
	}
}

// GenMipsCmd generates the mipmap chain on the currently bound 2D
// texture; it does not re-bind.
type GenMipsCmd struct{}

func (c GenMipsCmd) runRender(d *Device, ps *passState) { d.drv.GenerateMipmap(glTexture2DCmd) }

// DrawCmd is a non-instanced array draw.
type DrawCmd struct {
	Mode        uint32
	First, Count int32
}

func (c DrawCmd) runRender(d *Device, ps *passState) { d.drv.DrawArrays(c.Mode, c.First, c.Count) }

// DrawIndexedCmd is a non-instanced indexed draw. Instances != 1 is
// ignored (reserved; instanced drawing is a future extension per §4.2).
type DrawIndexedCmd struct {
	Mode      uint32
	Count     int32
	IndexType uint32
	Offset    uintptr
	Instances int32
}

func (c DrawIndexedCmd) runRender(d *Device, ps *passState) {
	d.drv.DrawElements(c.Mode, c.Count, c.IndexType, c.Offset)
}

// TextureSamplerCmd sets wrap and min/mag filtering, and anisotropy if
// Anisotropy > 0 (clamped externally to FeatureProbe.MaxAnisotropy).
type TextureSamplerCmd struct {
	Tex                  *Texture
	WrapS, WrapT         int32
	MinFilter, MagFilter int32
	Anisotropy           float32
}

const glTextureMaxAnisotropy = 0x84FE

func (c TextureSamplerCmd) runRender(d *Device, ps *passState) {
	target := glTexture2DCmd
	d.drv.TexParameteri(uint32(target), glTextureWrapS, c.WrapS)
	d.drv.TexParameteri(uint32(target), glTextureWrapT, c.WrapT)
	d.drv.TexParameteri(uint32(target), glTextureMinFilter, c.MinFilter)
	d.drv.TexParameteri(uint32(target), glTextureMagFilter, c.MagFilter)
	if c.Anisotropy > 0 {
		d.drv.TexParameterf(uint32(target), glTextureMaxAnisotropy, c.Anisotropy)
	}
	if c.Tex != nil {
		c.Tex.WrapS, c.Tex.WrapT = c.WrapS, c.WrapT
		c.Tex.MinFilter, c.Tex.MagFilter = c.MinFilter, c.MagFilter
		c.Tex.Anisotropy = c.Anisotropy
	}
}

const (
	glTextureMinLOD = 0x813A
	glTextureMaxLOD = 0x813B
	glTextureLODBias = 0x8501
)

// TextureLodCmd sets min/max LOD; LOD bias is desktop-only (ES omits
// it).
type TextureLodCmd struct {
	Tex            *Texture
	Min, Max, Bias float32
	HasBias        bool
}

func (c TextureLodCmd) runRender(d *Device, ps *passState) {
	target := uint32(glTexture2DCmd)
	d.drv.TexParameterf(target, glTextureMinLOD, c.Min)
	d.drv.TexParameterf(target, glTextureMaxLOD, c.Max)
	setBias := c.HasBias && !d.probe.isGLES
	if setBias {
		d.drv.TexParameterf(target, glTextureLODBias, c.Bias)
	}
	if c.Tex != nil {
		c.Tex.LODMin, c.Tex.LODMax = c.Min, c.Max
		if setBias {
			c.Tex.LODBias = c.Bias
		}
	}
}

// RasterCmd toggles face culling (with front-face winding and cull
// face when enabled) and dithering.
type RasterCmd struct {
	CullEnable  bool
	FrontFace   uint32
	CullFace    uint32
	DitherEnable bool
}

func (c RasterCmd) runRender(d *Device, ps *passState) {
	if c.CullEnable {
		d.drv.Enable(glCullFaceCap)
		d.drv.FrontFace(c.FrontFace)
		d.drv.CullFace(c.CullFace)
	} else {
		d.drv.Disable(glCullFaceCap)
	}
	if c.DitherEnable {
		d.drv.Enable(glDither)
	} else {
		d.drv.Disable(glDither)
	}
}

// RunSteps executes one frame's work: a list of RenderStep (and, in a
// full pipeline, Copy/Blit/Readback) steps, taking ownership of each
// step object and releasing it after execution (§6).
func (d *Device) RunSteps(steps []RenderStep) {
	for i := range steps {
		d.runRenderStep(&steps[i])
	}
}

// runRenderStep executes the commands of one RENDER step against its
// target framebuffer (§4.2). On entry: bind the target, enable scissor,
// bind the global VAO, set active texture unit to 0. On exit: disable
// every attribute index in attrMask, reset active texture if changed,
// clear buffer bindings, unbind the VAO, disable scissor.
func (d *Device) runRenderStep(step *RenderStep) {
	ps := &passState{curFB: step.Target}
	if step.Target != nil {
		ps.curFBWidth, ps.curFBHeight = step.Target.Width, step.Target.Height
	} else {
		ps.curFBWidth, ps.curFBHeight = d.state.targetWidth_, d.state.targetHeight_
	}

	if step.Target == nil {
		d.binder.Unbind()
	} else {
		d.binder.Bind(step.Target)
	}
	d.drv.Enable(glScissorTest)
	d.drv.BindVertexArray(d.globalVAO)
	d.drv.BindTexture(0, glTexture2DCmd, 0)
	ps.activeTexture = 0

	for _, cmd := range step.Commands {
		if cmd == nil {
			panic("glcore: nil render command")
		}
		cmd.runRender(d, ps)
	}

	for i := uint32(0); i < maxAttribLocations; i++ {
		if ps.attrMask&(1<<i) != 0 {
			d.drv.DisableVertexAttribArray(i)
		}
	}
	if ps.activeTexture != 0 {
		d.drv.BindTexture(0, glTexture2DCmd, 0)
	}
	d.drv.BindBuffer(glArrayBufferCmd, 0)
	d.drv.BindBuffer(glElementArrayBufferCmd, 0)
	d.drv.BindVertexArray(0)
	d.drv.Disable(glScissorTest)
}
