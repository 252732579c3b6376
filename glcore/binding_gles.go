//go:build !tinygo && cgo

package glcore

import (
	"fmt"
	"unsafe"

	gles2 "github.com/go-gl/gl/v3.1/gles2"
	gles3 "github.com/go-gl/gl/v3.2/gles3"
)

// glesBinding backs api on embedded contexts. Framebuffer object support
// is core on both ES2 and ES3 (unlike desktop, where it is an ARB/EXT
// extension split), so this binding always uses the unsuffixed
// entry points. Blit, copy-image, vertex array objects, fragment data
// location binding, and the separate draw/read framebuffer targets are
// gated behind probe.gles3, since those only became core in ES3.
type glesBinding struct {
	probe FeatureProbe
}

func newGLESBinding(probe FeatureProbe) *glesBinding { return &glesBinding{probe: probe} }

func (b *glesBinding) GenTexture() uint32 {
	var t uint32
	gles2.GenTextures(1, &t)
	return t
}
func (b *glesBinding) DeleteTexture(tex uint32) { gles2.DeleteTextures(1, &tex) }
func (b *glesBinding) BindTexture(unit int, target uint32, tex uint32) {
	gles2.ActiveTexture(gles2.TEXTURE0 + uint32(unit))
	gles2.BindTexture(target, tex)
}
func (b *glesBinding) TexImage2D(target uint32, level int32, width, height int32, format, xtype uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = unsafe.Pointer(&pixels[0])
	}
	gles2.TexImage2D(target, level, int32(format), width, height, 0, format, xtype, ptr)
}
func (b *glesBinding) TexParameteri(target, pname uint32, param int32)   { gles2.TexParameteri(target, pname, param) }
func (b *glesBinding) TexParameterf(target, pname uint32, param float32) { gles2.TexParameterf(target, pname, param) }
func (b *glesBinding) GenerateMipmap(target uint32)                      { gles2.GenerateMipmap(target) }

func (b *glesBinding) GenBuffer() uint32 {
	var buf uint32
	gles2.GenBuffers(1, &buf)
	return buf
}
func (b *glesBinding) DeleteBuffer(buf uint32)       { gles2.DeleteBuffers(1, &buf) }
func (b *glesBinding) BindBuffer(target, buf uint32) { gles2.BindBuffer(target, buf) }
func (b *glesBinding) BufferData(target uint32, size int, usage uint32) {
	gles2.BufferData(target, size, nil, usage)
}
func (b *glesBinding) BufferSubData(target uint32, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gles2.BufferSubData(target, offset, len(data), unsafe.Pointer(&data[0]))
}

func (b *glesBinding) CreateShader(stage uint32) uint32 { return gles2.CreateShader(stage) }
func (b *glesBinding) DeleteShader(sh uint32)           { gles2.DeleteShader(sh) }
func (b *glesBinding) ShaderSource(sh uint32, src string) {
	csrc, free := gles2.Strs(src + "\x00")
	defer free()
	length := int32(len(src) + 1)
	gles2.ShaderSource(sh, 1, csrc, &length)
}
func (b *glesBinding) CompileShader(sh uint32) (bool, string) {
	gles2.CompileShader(sh)
	var status int32
	gles2.GetShaderiv(sh, gles2.COMPILE_STATUS, &status)
	if status == gles2.TRUE {
		return true, ""
	}
	return false, infoLog(sh, gles2.GetShaderiv, gles2.GetShaderInfoLog)
}

func (b *glesBinding) CreateProgram() uint32        { return gles2.CreateProgram() }
func (b *glesBinding) DeleteProgram(prog uint32)    { gles2.DeleteProgram(prog) }
func (b *glesBinding) AttachShader(prog, sh uint32) { gles2.AttachShader(prog, sh) }
func (b *glesBinding) BindAttribLocation(prog uint32, loc uint32, name string) {
	gles2.BindAttribLocation(prog, loc, gles2.Str(name+"\x00"))
}

// BindFragDataLocation has no ES2 equivalent (fragment output binding
// on ES2 is implicit, always gl_FragColor); on ES3 with the
// EXT_blend_func_extended dual-source feature this binds the first
// indexed output.
func (b *glesBinding) BindFragDataLocation(prog uint32, colorNumber uint32, name string) {
	if b.probe.gles3 {
		gles3.BindFragDataLocationEXT(prog, colorNumber, gles3.Str(name+"\x00"))
	}
}
func (b *glesBinding) BindFragDataLocationIndexed(prog uint32, colorNumber, index uint32, name string) {
	if b.probe.gles3 {
		gles3.BindFragDataLocationIndexedEXT(prog, colorNumber, index, gles3.Str(name+"\x00"))
	}
}

func (b *glesBinding) LinkProgram(prog uint32) (bool, string) {
	gles2.LinkProgram(prog)
	var status int32
	gles2.GetProgramiv(prog, gles2.LINK_STATUS, &status)
	if status == gles2.TRUE {
		return true, ""
	}
	return false, infoLog(prog, gles2.GetProgramiv, gles2.GetProgramInfoLog)
}
func (b *glesBinding) UseProgram(prog uint32) { gles2.UseProgram(prog) }
func (b *glesBinding) UniformLocation(prog uint32, name string) int32 {
	return gles2.GetUniformLocation(prog, gles2.Str(name+"\x00"))
}
func (b *glesBinding) Uniform4f(loc int32, count int32, v [4]float32) {
	switch count {
	case 1:
		gles2.Uniform1f(loc, v[0])
	case 2:
		gles2.Uniform2f(loc, v[0], v[1])
	case 3:
		gles2.Uniform3f(loc, v[0], v[1], v[2])
	case 4:
		gles2.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}
func (b *glesBinding) Uniform4i(loc int32, count int32, v [4]int32) {
	switch count {
	case 1:
		gles2.Uniform1i(loc, v[0])
	case 2:
		gles2.Uniform2i(loc, v[0], v[1])
	case 3:
		gles2.Uniform3i(loc, v[0], v[1], v[2])
	case 4:
		gles2.Uniform4i(loc, v[0], v[1], v[2], v[3])
	}
}
func (b *glesBinding) UniformMatrix4(loc int32, m *[16]float32) { gles2.UniformMatrix4fv(loc, 1, false, &m[0]) }
func (b *glesBinding) UniformSampler(loc int32, unit int32)     { gles2.Uniform1i(loc, unit) }

func (b *glesBinding) GenVertexArray() uint32 {
	if !b.probe.gles3 {
		// ES2 vertex arrays come from OES_vertex_array_object; treat
		// absence the same as a zero (default) VAO, matching ES2
		// client-array behavior.
		return 0
	}
	var vao uint32
	gles3.GenVertexArrays(1, &vao)
	return vao
}
func (b *glesBinding) DeleteVertexArray(vao uint32) {
	if b.probe.gles3 {
		gles3.DeleteVertexArrays(1, &vao)
	}
}
func (b *glesBinding) BindVertexArray(vao uint32) {
	if b.probe.gles3 {
		gles3.BindVertexArray(vao)
	}
}
func (b *glesBinding) EnableVertexAttribArray(index uint32)  { gles2.EnableVertexAttribArray(index) }
func (b *glesBinding) DisableVertexAttribArray(index uint32) { gles2.DisableVertexAttribArray(index) }
func (b *glesBinding) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gles2.VertexAttribPointer(index, size, xtype, normalized, stride, unsafe.Pointer(offset))
}

func (b *glesBinding) GenFramebuffer() uint32 {
	var fb uint32
	gles2.GenFramebuffers(1, &fb)
	return fb
}
func (b *glesBinding) DeleteFramebuffer(fb uint32)   { gles2.DeleteFramebuffers(1, &fb) }
func (b *glesBinding) BindDrawFramebuffer(fb uint32) {
	if b.probe.gles3 {
		gles3.BindFramebuffer(gles3.DRAW_FRAMEBUFFER, fb)
		return
	}
	gles2.BindFramebuffer(gles2.FRAMEBUFFER, fb)
}
func (b *glesBinding) BindReadFramebuffer(fb uint32) {
	if b.probe.gles3 {
		gles3.BindFramebuffer(gles3.READ_FRAMEBUFFER, fb)
		return
	}
	gles2.BindFramebuffer(gles2.FRAMEBUFFER, fb)
}
func (b *glesBinding) FramebufferTexture2D(attachment uint32, tex uint32) {
	gles2.FramebufferTexture2D(gles2.FRAMEBUFFER, attachment, gles2.TEXTURE_2D, tex, 0)
}
func (b *glesBinding) GenRenderbuffer() uint32 {
	var rb uint32
	gles2.GenRenderbuffers(1, &rb)
	return rb
}
func (b *glesBinding) DeleteRenderbuffer(rb uint32) { gles2.DeleteRenderbuffers(1, &rb) }
func (b *glesBinding) BindRenderbuffer(rb uint32)   { gles2.BindRenderbuffer(gles2.RENDERBUFFER, rb) }
func (b *glesBinding) RenderbufferStorage(internalformat uint32, width, height int32) {
	gles2.RenderbufferStorage(gles2.RENDERBUFFER, internalformat, width, height)
}
func (b *glesBinding) FramebufferRenderbuffer(attachment uint32, rb uint32) {
	gles2.FramebufferRenderbuffer(gles2.FRAMEBUFFER, attachment, gles2.RENDERBUFFER, rb)
}
func (b *glesBinding) CheckFramebufferStatus() uint32 {
	return gles2.CheckFramebufferStatus(gles2.FRAMEBUFFER)
}

func (b *glesBinding) BlitFramebuffer(srcX, srcY, srcW, srcH, dstX, dstY, dstW, dstH int32) {
	if !b.probe.gles3 {
		return // reserved; blit is not available pre-ES3.
	}
	gles3.BlitFramebuffer(srcX, srcY, srcX+srcW, srcY+srcH, dstX, dstY, dstX+dstW, dstY+dstH,
		gles3.COLOR_BUFFER_BIT, gles3.NEAREST)
}

func (b *glesBinding) CopySubImage(srcTex, dstTex uint32, srcX, srcY, dstX, dstY, w, h int32) error {
	if !b.probe.gles3 {
		return fmt.Errorf("glcore: no copy-image dialect available")
	}
	gles3.CopyImageSubDataOES(srcTex, gles3.TEXTURE_2D, 0, srcX, srcY, 0,
		dstTex, gles3.TEXTURE_2D, 0, dstX, dstY, 0, w, h, 1)
	return nil
}

func (b *glesBinding) Enable(cap_ uint32)  { gles2.Enable(cap_) }
func (b *glesBinding) Disable(cap_ uint32) { gles2.Disable(cap_) }
func (b *glesBinding) DepthMask(flag bool) { gles2.DepthMask(flag) }
func (b *glesBinding) DepthFunc(fn uint32) { gles2.DepthFunc(fn) }
func (b *glesBinding) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA uint32) {
	gles2.BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA)
}
func (b *glesBinding) BlendEquationSeparate(modeRGB, modeA uint32) {
	gles2.BlendEquationSeparate(modeRGB, modeA)
}
func (b *glesBinding) BlendColor(r, g, bl, a float32) { gles2.BlendColor(r, g, bl, a) }
func (b *glesBinding) ColorMask(r, g, bl, a bool)     { gles2.ColorMask(r, g, bl, a) }
func (b *glesBinding) ClearColor(r, g, bl, a float32) { gles2.ClearColor(r, g, bl, a) }

// ClearDepth on ES always takes the float entry point (glClearDepthf);
// there is no double-precision variant, unlike desktop.
func (b *glesBinding) ClearDepth(d float64) { gles2.ClearDepthf(float32(d)) }
func (b *glesBinding) ClearStencil(s int32) { gles2.ClearStencil(s) }
func (b *glesBinding) Clear(mask uint32)    { gles2.Clear(mask) }
func (b *glesBinding) Viewport(x, y, w, h int32) { gles2.Viewport(x, y, w, h) }
func (b *glesBinding) Scissor(x, y, w, h int32)  { gles2.Scissor(x, y, w, h) }
func (b *glesBinding) DepthRange(n, f float64)   { gles2.DepthRangef(float32(n), float32(f)) }
func (b *glesBinding) StencilFunc(fn uint32, ref int32, mask uint32) { gles2.StencilFunc(fn, ref, mask) }
func (b *glesBinding) StencilOp(sfail, dpfail, dppass uint32)        { gles2.StencilOp(sfail, dpfail, dppass) }
func (b *glesBinding) StencilMask(mask uint32)                       { gles2.StencilMask(mask) }
func (b *glesBinding) CullFace(mode uint32)                          { gles2.CullFace(mode) }
func (b *glesBinding) FrontFace(mode uint32)                         { gles2.FrontFace(mode) }
func (b *glesBinding) DrawArrays(mode uint32, first, count int32)    { gles2.DrawArrays(mode, first, count) }
func (b *glesBinding) DrawElements(mode uint32, count int32, indexType uint32, offset uintptr) {
	gles2.DrawElements(mode, count, indexType, unsafe.Pointer(offset))
}

func (b *glesBinding) DrainErrors() []error { return drainGLErrors(gles2.GetError) }
