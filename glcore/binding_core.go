//go:build !tinygo && cgo

package glcore

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.6-core/gl"
)

// coreBinding backs api on desktop contexts where ARB_framebuffer_object
// (or core ≥3.0) is present. Framebuffer and blit entry points use the
// unsuffixed ARB/core names; the binding still consults probe for the
// copy-image sub-dialect (ARB vs NV), since those extensions are
// independent of framebuffer-object availability.
type coreBinding struct {
	probe FeatureProbe
}

func newCoreBinding(probe FeatureProbe) *coreBinding { return &coreBinding{probe: probe} }

func (b *coreBinding) GenTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (b *coreBinding) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }

func (b *coreBinding) BindTexture(unit int, target uint32, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(target, tex)
}

func (b *coreBinding) TexImage2D(target uint32, level int32, width, height int32, format, xtype uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = unsafe.Pointer(&pixels[0])
	}
	gl.TexImage2D(target, level, int32(format), width, height, 0, format, xtype, ptr)
}

func (b *coreBinding) TexParameteri(target, pname uint32, param int32) { gl.TexParameteri(target, pname, param) }
func (b *coreBinding) TexParameterf(target, pname uint32, param float32) {
	gl.TexParameterf(target, pname, param)
}
func (b *coreBinding) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (b *coreBinding) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}
func (b *coreBinding) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }
func (b *coreBinding) BindBuffer(target, buf uint32) { gl.BindBuffer(target, buf) }
func (b *coreBinding) BufferData(target uint32, size int, usage uint32) {
	gl.BufferData(target, size, nil, usage)
}
func (b *coreBinding) BufferSubData(target uint32, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(target, offset, len(data), unsafe.Pointer(&data[0]))
}

func (b *coreBinding) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }
func (b *coreBinding) DeleteShader(sh uint32)           { gl.DeleteShader(sh) }

func (b *coreBinding) ShaderSource(sh uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	length := int32(len(src) + 1)
	gl.ShaderSource(sh, 1, csrc, &length)
}

func (b *coreBinding) CompileShader(sh uint32) (bool, string) {
	gl.CompileShader(sh)
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	return false, infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
}

func (b *coreBinding) CreateProgram() uint32 { return gl.CreateProgram() }
func (b *coreBinding) DeleteProgram(prog uint32) { gl.DeleteProgram(prog) }
func (b *coreBinding) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }

func (b *coreBinding) BindAttribLocation(prog uint32, loc uint32, name string) {
	gl.BindAttribLocation(prog, loc, gl.Str(name+"\x00"))
}

func (b *coreBinding) BindFragDataLocation(prog uint32, colorNumber uint32, name string) {
	gl.BindFragDataLocation(prog, colorNumber, gl.Str(name+"\x00"))
}

func (b *coreBinding) BindFragDataLocationIndexed(prog uint32, colorNumber, index uint32, name string) {
	gl.BindFragDataLocationIndexed(prog, colorNumber, index, gl.Str(name+"\x00"))
}

func (b *coreBinding) LinkProgram(prog uint32) (bool, string) {
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	return false, infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
}

func (b *coreBinding) UseProgram(prog uint32) { gl.UseProgram(prog) }

func (b *coreBinding) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (b *coreBinding) Uniform4f(loc int32, count int32, v [4]float32) {
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

func (b *coreBinding) Uniform4i(loc int32, count int32, v [4]int32) {
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

func (b *coreBinding) UniformMatrix4(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (b *coreBinding) UniformSampler(loc int32, unit int32) { gl.Uniform1i(loc, unit) }

func (b *coreBinding) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}
func (b *coreBinding) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }
func (b *coreBinding) BindVertexArray(vao uint32)   { gl.BindVertexArray(vao) }
func (b *coreBinding) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (b *coreBinding) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }
func (b *coreBinding) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (b *coreBinding) GenFramebuffer() uint32 {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return fb
}
func (b *coreBinding) DeleteFramebuffer(fb uint32) { gl.DeleteFramebuffers(1, &fb) }
func (b *coreBinding) BindDrawFramebuffer(fb uint32) { gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fb) }
func (b *coreBinding) BindReadFramebuffer(fb uint32) { gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb) }
func (b *coreBinding) FramebufferTexture2D(attachment uint32, tex uint32) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, tex, 0)
}
func (b *coreBinding) GenRenderbuffer() uint32 {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	return rb
}
func (b *coreBinding) DeleteRenderbuffer(rb uint32) { gl.DeleteRenderbuffers(1, &rb) }
func (b *coreBinding) BindRenderbuffer(rb uint32)   { gl.BindRenderbuffer(gl.RENDERBUFFER, rb) }
func (b *coreBinding) RenderbufferStorage(internalformat uint32, width, height int32) {
	gl.RenderbufferStorage(gl.RENDERBUFFER, internalformat, width, height)
}
func (b *coreBinding) FramebufferRenderbuffer(attachment uint32, rb uint32) {
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, rb)
}
func (b *coreBinding) CheckFramebufferStatus() uint32 {
	return gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
}

func (b *coreBinding) BlitFramebuffer(srcX, srcY, srcW, srcH, dstX, dstY, dstW, dstH int32) {
	gl.BlitFramebuffer(srcX, srcY, srcX+srcW, srcY+srcH, dstX, dstY, dstX+dstW, dstY+dstH,
		gl.COLOR_BUFFER_BIT, gl.NEAREST)
}

func (b *coreBinding) CopySubImage(srcTex, dstTex uint32, srcX, srcY, dstX, dstY, w, h int32) error {
	switch {
	case b.probe.arbCopyImage:
		gl.CopyImageSubData(srcTex, gl.TEXTURE_2D, 0, srcX, srcY, 0,
			dstTex, gl.TEXTURE_2D, 0, dstX, dstY, 0, w, h, 1)
		return nil
	case b.probe.nvCopyImage:
		gl.CopyImageSubDataNV(srcTex, gl.TEXTURE_2D, 0, srcX, srcY, 0,
			dstTex, gl.TEXTURE_2D, 0, dstX, dstY, 0, w, h, 1)
		return nil
	default:
		return fmt.Errorf("glcore: no copy-image dialect available")
	}
}

func (b *coreBinding) Enable(cap_ uint32)  { gl.Enable(cap_) }
func (b *coreBinding) Disable(cap_ uint32) { gl.Disable(cap_) }
func (b *coreBinding) DepthMask(flag bool) { gl.DepthMask(flag) }
func (b *coreBinding) DepthFunc(fn uint32) { gl.DepthFunc(fn) }
func (b *coreBinding) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA uint32) {
	gl.BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA)
}
func (b *coreBinding) BlendEquationSeparate(modeRGB, modeA uint32) {
	gl.BlendEquationSeparate(modeRGB, modeA)
}
func (b *coreBinding) BlendColor(r, g, bl, a float32) { gl.BlendColor(r, g, bl, a) }
func (b *coreBinding) ColorMask(r, g, bl, a bool)     { gl.ColorMask(r, g, bl, a) }
func (b *coreBinding) ClearColor(r, g, bl, a float32) { gl.ClearColor(r, g, bl, a) }
func (b *coreBinding) ClearDepth(d float64)           { gl.ClearDepth(d) }
func (b *coreBinding) ClearStencil(s int32)           { gl.ClearStencil(s) }
func (b *coreBinding) Clear(mask uint32)              { gl.Clear(mask) }
func (b *coreBinding) Viewport(x, y, w, h int32)      { gl.Viewport(x, y, w, h) }
func (b *coreBinding) Scissor(x, y, w, h int32)       { gl.Scissor(x, y, w, h) }
func (b *coreBinding) DepthRange(n, f float64)        { gl.DepthRange(n, f) }
func (b *coreBinding) StencilFunc(fn uint32, ref int32, mask uint32) { gl.StencilFunc(fn, ref, mask) }
func (b *coreBinding) StencilOp(sfail, dpfail, dppass uint32)        { gl.StencilOp(sfail, dpfail, dppass) }
func (b *coreBinding) StencilMask(mask uint32)                       { gl.StencilMask(mask) }
func (b *coreBinding) CullFace(mode uint32)                          { gl.CullFace(mode) }
func (b *coreBinding) FrontFace(mode uint32)                         { gl.FrontFace(mode) }
func (b *coreBinding) DrawArrays(mode uint32, first, count int32)    { gl.DrawArrays(mode, first, count) }
func (b *coreBinding) DrawElements(mode uint32, count int32, indexType uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, indexType, offset)
}

func (b *coreBinding) DrainErrors() []error { return drainGLErrors(gl.GetError) }

// infoLog reads a bounded compile/link info log, shared by all dialects
// whose getIV/getInfoLog signatures match the ARB/core shape.
func infoLog(id uint32, getIV func(uint32, uint32, *int32), getInfo func(uint32, int32, *int32, *uint8)) string {
	var logLength int32
	getIV(id, 0x8B84 /* INFO_LOG_LENGTH */, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := make([]byte, logLength)
	getInfo(id, logLength, nil, &buf[0])
	if n := len(buf); n > 0 && buf[n-1] == 0 {
		buf = buf[:n-1]
	}
	return string(buf)
}
