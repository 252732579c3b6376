package glcore

import "fmt"

// fakeAPI is a recording test double for api, grounded on the
// interface-substitution pattern used by the pack's driver
// abstractions. Every call appends a short description to Calls; the
// methods that can fail can be configured to do so for one test case
// at a time.
type fakeAPI struct {
	Calls []string

	nextName uint32

	compileOK     bool
	compileInfo   string
	linkOK        bool
	linkInfo      string
	fbStatus      uint32
	uniformLocs   map[string]int32
	copyErr       error
	drainedErrors []error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		compileOK:   true,
		linkOK:      true,
		fbStatus:    glFramebufferComplete,
		uniformLocs: map[string]int32{},
	}
}

func (f *fakeAPI) log(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *fakeAPI) genName() uint32 {
	f.nextName++
	return f.nextName
}

func (f *fakeAPI) GenTexture() uint32 { n := f.genName(); f.log("GenTexture->%d", n); return n }
func (f *fakeAPI) DeleteTexture(tex uint32)              { f.log("DeleteTexture(%d)", tex) }
func (f *fakeAPI) BindTexture(unit int, target, tex uint32) {
	f.log("BindTexture(unit=%d,target=0x%X,tex=%d)", unit, target, tex)
}
func (f *fakeAPI) TexImage2D(target uint32, level int32, w, h int32, format, xtype uint32, pixels []byte) {
	f.log("TexImage2D(target=0x%X,level=%d,%dx%d)", target, level, w, h)
}
func (f *fakeAPI) TexParameteri(target, pname uint32, param int32) {
	f.log("TexParameteri(0x%X,0x%X,%d)", target, pname, param)
}
func (f *fakeAPI) TexParameterf(target, pname uint32, param float32) {
	f.log("TexParameterf(0x%X,0x%X,%v)", target, pname, param)
}
func (f *fakeAPI) GenerateMipmap(target uint32) { f.log("GenerateMipmap(0x%X)", target) }

func (f *fakeAPI) GenBuffer() uint32 { n := f.genName(); f.log("GenBuffer->%d", n); return n }
func (f *fakeAPI) DeleteBuffer(buf uint32) { f.log("DeleteBuffer(%d)", buf) }
func (f *fakeAPI) BindBuffer(target, buf uint32) {
	f.log("BindBuffer(target=0x%X,buf=%d)", target, buf)
}
func (f *fakeAPI) BufferData(target uint32, size int, usage uint32) {
	f.log("BufferData(target=0x%X,size=%d)", target, size)
}
func (f *fakeAPI) BufferSubData(target uint32, offset int, data []byte) {
	f.log("BufferSubData(target=0x%X,offset=%d,len=%d)", target, offset, len(data))
}

func (f *fakeAPI) CreateShader(stage uint32) uint32 {
	n := f.genName()
	f.log("CreateShader(stage=0x%X)->%d", stage, n)
	return n
}
func (f *fakeAPI) DeleteShader(sh uint32) { f.log("DeleteShader(%d)", sh) }
func (f *fakeAPI) ShaderSource(sh uint32, src string) { f.log("ShaderSource(%d,len=%d)", sh, len(src)) }
func (f *fakeAPI) CompileShader(sh uint32) (bool, string) {
	f.log("CompileShader(%d)->%v", sh, f.compileOK)
	return f.compileOK, f.compileInfo
}
func (f *fakeAPI) CreateProgram() uint32 { n := f.genName(); f.log("CreateProgram->%d", n); return n }
func (f *fakeAPI) DeleteProgram(prog uint32) { f.log("DeleteProgram(%d)", prog) }
func (f *fakeAPI) AttachShader(prog, sh uint32) { f.log("AttachShader(%d,%d)", prog, sh) }
func (f *fakeAPI) BindAttribLocation(prog uint32, loc uint32, name string) {
	f.log("BindAttribLocation(%d,%d,%s)", prog, loc, name)
}
func (f *fakeAPI) BindFragDataLocation(prog uint32, colorNumber uint32, name string) {
	f.log("BindFragDataLocation(%d,%d,%s)", prog, colorNumber, name)
}
func (f *fakeAPI) BindFragDataLocationIndexed(prog uint32, colorNumber, index uint32, name string) {
	f.log("BindFragDataLocationIndexed(%d,%d,%d,%s)", prog, colorNumber, index, name)
}
func (f *fakeAPI) LinkProgram(prog uint32) (bool, string) {
	f.log("LinkProgram(%d)->%v", prog, f.linkOK)
	return f.linkOK, f.linkInfo
}
func (f *fakeAPI) UseProgram(prog uint32) { f.log("UseProgram(%d)", prog) }
func (f *fakeAPI) UniformLocation(prog uint32, name string) int32 {
	loc, ok := f.uniformLocs[name]
	if !ok {
		loc = -1
	}
	f.log("UniformLocation(%d,%s)->%d", prog, name, loc)
	return loc
}
func (f *fakeAPI) Uniform4f(loc int32, count int32, v [4]float32) {
	f.log("Uniform4f(loc=%d,count=%d)", loc, count)
}
func (f *fakeAPI) Uniform4i(loc int32, count int32, v [4]int32) {
	f.log("Uniform4i(loc=%d,count=%d)", loc, count)
}
func (f *fakeAPI) UniformMatrix4(loc int32, m *[16]float32) { f.log("UniformMatrix4(loc=%d)", loc) }
func (f *fakeAPI) UniformSampler(loc int32, unit int32)     { f.log("UniformSampler(loc=%d,unit=%d)", loc, unit) }

func (f *fakeAPI) GenVertexArray() uint32 { n := f.genName(); f.log("GenVertexArray->%d", n); return n }
func (f *fakeAPI) DeleteVertexArray(vao uint32) { f.log("DeleteVertexArray(%d)", vao) }
func (f *fakeAPI) BindVertexArray(vao uint32)   { f.log("BindVertexArray(%d)", vao) }
func (f *fakeAPI) EnableVertexAttribArray(index uint32)  { f.log("EnableVertexAttribArray(%d)", index) }
func (f *fakeAPI) DisableVertexAttribArray(index uint32) { f.log("DisableVertexAttribArray(%d)", index) }
func (f *fakeAPI) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	f.log("VertexAttribPointer(idx=%d,size=%d,stride=%d,offset=%d)", index, size, stride, offset)
}

func (f *fakeAPI) GenFramebuffer() uint32 { n := f.genName(); f.log("GenFramebuffer->%d", n); return n }
func (f *fakeAPI) DeleteFramebuffer(fb uint32) { f.log("DeleteFramebuffer(%d)", fb) }
func (f *fakeAPI) BindDrawFramebuffer(fb uint32) { f.log("BindDrawFramebuffer(%d)", fb) }
func (f *fakeAPI) BindReadFramebuffer(fb uint32) { f.log("BindReadFramebuffer(%d)", fb) }
func (f *fakeAPI) FramebufferTexture2D(attachment uint32, tex uint32) {
	f.log("FramebufferTexture2D(0x%X,%d)", attachment, tex)
}
func (f *fakeAPI) GenRenderbuffer() uint32 { n := f.genName(); f.log("GenRenderbuffer->%d", n); return n }
func (f *fakeAPI) DeleteRenderbuffer(rb uint32) { f.log("DeleteRenderbuffer(%d)", rb) }
func (f *fakeAPI) BindRenderbuffer(rb uint32)   { f.log("BindRenderbuffer(%d)", rb) }
func (f *fakeAPI) RenderbufferStorage(internalformat uint32, width, height int32) {
	f.log("RenderbufferStorage(0x%X,%dx%d)", internalformat, width, height)
}
func (f *fakeAPI) FramebufferRenderbuffer(attachment uint32, rb uint32) {
	f.log("FramebufferRenderbuffer(0x%X,%d)", attachment, rb)
}
func (f *fakeAPI) CheckFramebufferStatus() uint32 {
	f.log("CheckFramebufferStatus->0x%X", f.fbStatus)
	return f.fbStatus
}

func (f *fakeAPI) BlitFramebuffer(srcX, srcY, srcW, srcH, dstX, dstY, dstW, dstH int32) {
	f.log("BlitFramebuffer(%d,%d,%d,%d->%d,%d,%d,%d)", srcX, srcY, srcW, srcH, dstX, dstY, dstW, dstH)
}
func (f *fakeAPI) CopySubImage(srcTex, dstTex uint32, srcX, srcY, dstX, dstY, w, h int32) error {
	f.log("CopySubImage(%d->%d)", srcTex, dstTex)
	return f.copyErr
}

func (f *fakeAPI) Enable(cap_ uint32)  { f.log("Enable(0x%X)", cap_) }
func (f *fakeAPI) Disable(cap_ uint32) { f.log("Disable(0x%X)", cap_) }
func (f *fakeAPI) DepthMask(flag bool) { f.log("DepthMask(%v)", flag) }
func (f *fakeAPI) DepthFunc(fn uint32) { f.log("DepthFunc(0x%X)", fn) }
func (f *fakeAPI) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA uint32) {
	f.log("BlendFuncSeparate(%X,%X,%X,%X)", srcRGB, dstRGB, srcA, dstA)
}
func (f *fakeAPI) BlendEquationSeparate(modeRGB, modeA uint32) {
	f.log("BlendEquationSeparate(%X,%X)", modeRGB, modeA)
}
func (f *fakeAPI) BlendColor(r, g, b, a float32) { f.log("BlendColor(%v,%v,%v,%v)", r, g, b, a) }
func (f *fakeAPI) ColorMask(r, g, b, a bool)     { f.log("ColorMask(%v,%v,%v,%v)", r, g, b, a) }
func (f *fakeAPI) ClearColor(r, g, b, a float32) { f.log("ClearColor(%v,%v,%v,%v)", r, g, b, a) }
func (f *fakeAPI) ClearDepth(d float64)          { f.log("ClearDepth(%v)", d) }
func (f *fakeAPI) ClearStencil(s int32)          { f.log("ClearStencil(%d)", s) }
func (f *fakeAPI) Clear(mask uint32)             { f.log("Clear(0x%X)", mask) }
func (f *fakeAPI) Viewport(x, y, w, h int32)     { f.log("Viewport(%d,%d,%d,%d)", x, y, w, h) }
func (f *fakeAPI) Scissor(x, y, w, h int32)      { f.log("Scissor(%d,%d,%d,%d)", x, y, w, h) }
func (f *fakeAPI) DepthRange(n, fa float64)       { f.log("DepthRange(%v,%v)", n, fa) }
func (f *fakeAPI) StencilFunc(fn uint32, ref int32, mask uint32) {
	f.log("StencilFunc(0x%X,%d,0x%X)", fn, ref, mask)
}
func (f *fakeAPI) StencilOp(sfail, dpfail, dppass uint32) {
	f.log("StencilOp(0x%X,0x%X,0x%X)", sfail, dpfail, dppass)
}
func (f *fakeAPI) StencilMask(mask uint32) { f.log("StencilMask(0x%X)", mask) }
func (f *fakeAPI) CullFace(mode uint32)    { f.log("CullFace(0x%X)", mode) }
func (f *fakeAPI) FrontFace(mode uint32)   { f.log("FrontFace(0x%X)", mode) }
func (f *fakeAPI) DrawArrays(mode uint32, first, count int32) {
	f.log("DrawArrays(0x%X,%d,%d)", mode, first, count)
}
func (f *fakeAPI) DrawElements(mode uint32, count int32, indexType uint32, offset uintptr) {
	f.log("DrawElements(0x%X,%d,0x%X,%d)", mode, count, indexType, offset)
}

func (f *fakeAPI) DrainErrors() []error { return f.drainedErrors }

var _ api = (*fakeAPI)(nil)

// newTestDevice builds a Device wired to a fresh fakeAPI, bypassing
// newAPI/NewDevice's real-driver construction so tests run without cgo.
func newTestDevice(probe FeatureProbe) (*Device, *fakeAPI) {
	drv := newFakeAPI()
	d := &Device{
		drv:   drv,
		probe: probe,
		log:   newDiagLogger(nil),
	}
	d.handles = newHandleCache(drv, probe.maxAnisotropy)
	d.binder = newFBBinder(drv, &d.state, probe)
	return d, drv
}
