package glcore

// api is the subset of GL entry points the init and render interpreters
// call. Exactly one implementation backs it per process, chosen by
// newAPI from the FeatureProbe at device-creation time — this is the
// "one internal dispatcher per operation" seam called for in the design
// notes: ARB/EXT/OES/NV variants live inside a binding's method bodies,
// never scattered through step execution.
type api interface {
	// Textures.
	GenTexture() uint32
	DeleteTexture(tex uint32)
	BindTexture(unit int, target uint32, tex uint32)
	TexImage2D(target uint32, level int32, width, height int32, format, xtype uint32, pixels []byte)
	TexParameteri(target uint32, pname uint32, param int32)
	TexParameterf(target uint32, pname uint32, param float32)
	GenerateMipmap(target uint32)

	// Buffers.
	GenBuffer() uint32
	DeleteBuffer(buf uint32)
	BindBuffer(target uint32, buf uint32)
	BufferData(target uint32, size int, usage uint32)
	BufferSubData(target uint32, offset int, data []byte)

	// Shaders and programs.
	CreateShader(stage uint32) uint32
	DeleteShader(sh uint32)
	ShaderSource(sh uint32, src string)
	CompileShader(sh uint32) (ok bool, infoLog string)
	CreateProgram() uint32
	DeleteProgram(prog uint32)
	AttachShader(prog, sh uint32)
	BindAttribLocation(prog uint32, loc uint32, name string)
	BindFragDataLocation(prog uint32, colorNumber uint32, name string)
	BindFragDataLocationIndexed(prog uint32, colorNumber, index uint32, name string)
	LinkProgram(prog uint32) (ok bool, infoLog string)
	UseProgram(prog uint32)
	UniformLocation(prog uint32, name string) int32
	Uniform4f(loc int32, count int32, v [4]float32)
	Uniform4i(loc int32, count int32, v [4]int32)
	UniformMatrix4(loc int32, m *[16]float32)
	UniformSampler(loc int32, unit int32)

	// Vertex array / attribute state.
	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	// Framebuffers and renderbuffers. The dialect (ARB/core vs EXT) is
	// fixed for the lifetime of the binding.
	GenFramebuffer() uint32
	DeleteFramebuffer(fb uint32)
	BindDrawFramebuffer(fb uint32)
	BindReadFramebuffer(fb uint32)
	FramebufferTexture2D(attachment uint32, tex uint32)
	GenRenderbuffer() uint32
	DeleteRenderbuffer(rb uint32)
	BindRenderbuffer(rb uint32)
	RenderbufferStorage(internalformat uint32, width, height int32)
	FramebufferRenderbuffer(attachment uint32, rb uint32)
	CheckFramebufferStatus() uint32

	// Cross-framebuffer transfers.
	BlitFramebuffer(srcX, srcY, srcW, srcH, dstX, dstY, dstW, dstH int32)
	CopySubImage(srcTex, dstTex uint32, srcX, srcY, dstX, dstY, w, h int32) error

	// Pass-scoped state.
	Enable(cap_ uint32)
	Disable(cap_ uint32)
	DepthMask(flag bool)
	DepthFunc(fn uint32)
	BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA uint32)
	BlendEquationSeparate(modeRGB, modeA uint32)
	BlendColor(r, g, b, a float32)
	ColorMask(r, g, b, a bool)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float64)
	ClearStencil(s int32)
	Clear(mask uint32)
	Viewport(x, y, w, h int32)
	Scissor(x, y, w, h int32)
	DepthRange(n, f float64)
	StencilFunc(fn uint32, ref int32, mask uint32)
	StencilOp(sfail, dpfail, dppass uint32)
	StencilMask(mask uint32)
	CullFace(mode uint32)
	FrontFace(mode uint32)
	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, indexType uint32, offset uintptr)

	// Diagnostics.
	DrainErrors() []error
}
