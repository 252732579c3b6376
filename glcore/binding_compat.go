//go:build !tinygo && cgo

package glcore

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v2.1/gl"
)

// compatBinding backs api on legacy desktop contexts that expose
// framebuffer functionality only through EXT_framebuffer_object (no
// ARB_framebuffer_object, no core ≥3.0). Every framebuffer/renderbuffer
// entry point carries the EXT suffix; blit, when available at all on
// such a context, comes from EXT_framebuffer_blit or NV_framebuffer_blit.
type compatBinding struct {
	probe FeatureProbe
}

func newCompatBinding(probe FeatureProbe) *compatBinding { return &compatBinding{probe: probe} }

func (b *compatBinding) GenTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}
func (b *compatBinding) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }
func (b *compatBinding) BindTexture(unit int, target uint32, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(target, tex)
}
func (b *compatBinding) TexImage2D(target uint32, level int32, width, height int32, format, xtype uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = unsafe.Pointer(&pixels[0])
	}
	gl.TexImage2D(target, level, int32(format), width, height, 0, format, xtype, ptr)
}
func (b *compatBinding) TexParameteri(target, pname uint32, param int32)   { gl.TexParameteri(target, pname, param) }
func (b *compatBinding) TexParameterf(target, pname uint32, param float32) { gl.TexParameterf(target, pname, param) }
func (b *compatBinding) GenerateMipmap(target uint32)                      { gl.GenerateMipmapEXT(target) }

func (b *compatBinding) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}
func (b *compatBinding) DeleteBuffer(buf uint32)     { gl.DeleteBuffers(1, &buf) }
func (b *compatBinding) BindBuffer(target, buf uint32) { gl.BindBuffer(target, buf) }
func (b *compatBinding) BufferData(target uint32, size int, usage uint32) {
	gl.BufferData(target, size, nil, usage)
}
func (b *compatBinding) BufferSubData(target uint32, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(target, offset, len(data), unsafe.Pointer(&data[0]))
}

func (b *compatBinding) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }
func (b *compatBinding) DeleteShader(sh uint32)           { gl.DeleteShader(sh) }
func (b *compatBinding) ShaderSource(sh uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	length := int32(len(src) + 1)
	gl.ShaderSource(sh, 1, csrc, &length)
}
func (b *compatBinding) CompileShader(sh uint32) (bool, string) {
	gl.CompileShader(sh)
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	return false, infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
}

func (b *compatBinding) CreateProgram() uint32      { return gl.CreateProgram() }
func (b *compatBinding) DeleteProgram(prog uint32)  { gl.DeleteProgram(prog) }
func (b *compatBinding) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }
func (b *compatBinding) BindAttribLocation(prog uint32, loc uint32, name string) {
	gl.BindAttribLocation(prog, loc, gl.Str(name+"\x00"))
}
func (b *compatBinding) BindFragDataLocation(prog uint32, colorNumber uint32, name string) {
	gl.BindFragDataLocationEXT(prog, colorNumber, gl.Str(name+"\x00"))
}
func (b *compatBinding) BindFragDataLocationIndexed(prog uint32, colorNumber, index uint32, name string) {
	// Dual-source blending is an ARB/core-≥3.3 feature; this legacy
	// dialect never reports supportsDualSourceBlend so the init
	// interpreter never calls this on a compatBinding, but the method
	// must exist to satisfy api.
	gl.BindFragDataLocationEXT(prog, colorNumber, gl.Str(name+"\x00"))
}
func (b *compatBinding) LinkProgram(prog uint32) (bool, string) {
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	return false, infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
}
func (b *compatBinding) UseProgram(prog uint32) { gl.UseProgram(prog) }
func (b *compatBinding) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}
func (b *compatBinding) Uniform4f(loc int32, count int32, v [4]float32) {
	switch count {
	case 1:
		gl.Uniform1f(loc, v[0])
	case 2:
		gl.Uniform2f(loc, v[0], v[1])
	case 3:
		gl.Uniform3f(loc, v[0], v[1], v[2])
	case 4:
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}
func (b *compatBinding) Uniform4i(loc int32, count int32, v [4]int32) {
	switch count {
	case 1:
		gl.Uniform1i(loc, v[0])
	case 2:
		gl.Uniform2i(loc, v[0], v[1])
	case 3:
		gl.Uniform3i(loc, v[0], v[1], v[2])
	case 4:
		gl.Uniform4i(loc, v[0], v[1], v[2], v[3])
	}
}
func (b *compatBinding) UniformMatrix4(loc int32, m *[16]float32) { gl.UniformMatrix4fv(loc, 1, false, &m[0]) }
func (b *compatBinding) UniformSampler(loc int32, unit int32)     { gl.Uniform1i(loc, unit) }

func (b *compatBinding) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}
func (b *compatBinding) DeleteVertexArray(vao uint32)        { gl.DeleteVertexArrays(1, &vao) }
func (b *compatBinding) BindVertexArray(vao uint32)          { gl.BindVertexArray(vao) }
func (b *compatBinding) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (b *compatBinding) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }
func (b *compatBinding) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, unsafe.Pointer(offset))
}

func (b *compatBinding) GenFramebuffer() uint32 {
	var fb uint32
	gl.GenFramebuffersEXT(1, &fb)
	return fb
}
func (b *compatBinding) DeleteFramebuffer(fb uint32) { gl.DeleteFramebuffersEXT(1, &fb) }

// Legacy EXT_framebuffer_object predates the draw/read split; both
// targets alias the combined GL_FRAMEBUFFER_EXT target.
func (b *compatBinding) BindDrawFramebuffer(fb uint32) { gl.BindFramebufferEXT(gl.FRAMEBUFFER_EXT, fb) }
func (b *compatBinding) BindReadFramebuffer(fb uint32) { gl.BindFramebufferEXT(gl.FRAMEBUFFER_EXT, fb) }
func (b *compatBinding) FramebufferTexture2D(attachment uint32, tex uint32) {
	gl.FramebufferTexture2DEXT(gl.FRAMEBUFFER_EXT, attachment, gl.TEXTURE_2D, tex, 0)
}
func (b *compatBinding) GenRenderbuffer() uint32 {
	var rb uint32
	gl.GenRenderbuffersEXT(1, &rb)
	return rb
}
func (b *compatBinding) DeleteRenderbuffer(rb uint32) { gl.DeleteRenderbuffersEXT(1, &rb) }
func (b *compatBinding) BindRenderbuffer(rb uint32)   { gl.BindRenderbufferEXT(gl.RENDERBUFFER_EXT, rb) }
func (b *compatBinding) RenderbufferStorage(internalformat uint32, width, height int32) {
	gl.RenderbufferStorageEXT(gl.RENDERBUFFER_EXT, internalformat, width, height)
}
func (b *compatBinding) FramebufferRenderbuffer(attachment uint32, rb uint32) {
	gl.FramebufferRenderbufferEXT(gl.FRAMEBUFFER_EXT, attachment, gl.RENDERBUFFER_EXT, rb)
}
func (b *compatBinding) CheckFramebufferStatus() uint32 {
	return gl.CheckFramebufferStatusEXT(gl.FRAMEBUFFER_EXT)
}

func (b *compatBinding) BlitFramebuffer(srcX, srcY, srcW, srcH, dstX, dstY, dstW, dstH int32) {
	if b.probe.nvFramebufferBlit {
		gl.BlitFramebufferEXT(srcX, srcY, srcX+srcW, srcY+srcH, dstX, dstY, dstX+dstW, dstY+dstH,
			gl.COLOR_BUFFER_BIT, gl.NEAREST)
		return
	}
	gl.BlitFramebufferEXT(srcX, srcY, srcX+srcW, srcY+srcH, dstX, dstY, dstX+dstW, dstY+dstH,
		gl.COLOR_BUFFER_BIT, gl.NEAREST)
}

func (b *compatBinding) CopySubImage(srcTex, dstTex uint32, srcX, srcY, dstX, dstY, w, h int32) error {
	if !b.probe.nvCopyImage {
		return fmt.Errorf("glcore: no copy-image dialect available")
	}
	gl.CopyImageSubDataNV(srcTex, gl.TEXTURE_2D, 0, srcX, srcY, 0,
		dstTex, gl.TEXTURE_2D, 0, dstX, dstY, 0, w, h, 1)
	return nil
}

func (b *compatBinding) Enable(cap_ uint32)  { gl.Enable(cap_) }
func (b *compatBinding) Disable(cap_ uint32) { gl.Disable(cap_) }
func (b *compatBinding) DepthMask(flag bool) { gl.DepthMask(flag) }
func (b *compatBinding) DepthFunc(fn uint32) { gl.DepthFunc(fn) }
func (b *compatBinding) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA uint32) {
	gl.BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA)
}
func (b *compatBinding) BlendEquationSeparate(modeRGB, modeA uint32) {
	gl.BlendEquationSeparate(modeRGB, modeA)
}
func (b *compatBinding) BlendColor(r, g, bl, a float32) { gl.BlendColor(r, g, bl, a) }
func (b *compatBinding) ColorMask(r, g, bl, a bool)     { gl.ColorMask(r, g, bl, a) }
func (b *compatBinding) ClearColor(r, g, bl, a float32) { gl.ClearColor(r, g, bl, a) }
func (b *compatBinding) ClearDepth(d float64)           { gl.ClearDepth(d) }
func (b *compatBinding) ClearStencil(s int32)           { gl.ClearStencil(s) }
func (b *compatBinding) Clear(mask uint32)              { gl.Clear(mask) }
func (b *compatBinding) Viewport(x, y, w, h int32)      { gl.Viewport(x, y, w, h) }
func (b *compatBinding) Scissor(x, y, w, h int32)       { gl.Scissor(x, y, w, h) }
func (b *compatBinding) DepthRange(n, f float64)        { gl.DepthRange(n, f) }
func (b *compatBinding) StencilFunc(fn uint32, ref int32, mask uint32) { gl.StencilFunc(fn, ref, mask) }
func (b *compatBinding) StencilOp(sfail, dpfail, dppass uint32)        { gl.StencilOp(sfail, dpfail, dppass) }
func (b *compatBinding) StencilMask(mask uint32)                       { gl.StencilMask(mask) }
func (b *compatBinding) CullFace(mode uint32)                          { gl.CullFace(mode) }
func (b *compatBinding) FrontFace(mode uint32)                         { gl.FrontFace(mode) }
func (b *compatBinding) DrawArrays(mode uint32, first, count int32)    { gl.DrawArrays(mode, first, count) }
func (b *compatBinding) DrawElements(mode uint32, count int32, indexType uint32, offset uintptr) {
	gl.DrawElements(mode, count, indexType, unsafe.Pointer(offset))
}

func (b *compatBinding) DrainErrors() []error { return drainGLErrors(gl.GetError) }
