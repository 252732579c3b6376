package glcore

import "fmt"

// InitStep is the sum type of the nine init-step kinds (§3, §4.1). Each
// variant carries only the fields its kind uses — a discriminated union
// modeled as one Go type per variant rather than a single struct with
// every field present, per the design notes' "Tagged commands" guidance.
type InitStep interface {
	runInit(d *Device)
}

// CreateTextureStep allocates one texture name and binds it to Target on
// texture unit 0. No last-bound record is kept.
type CreateTextureStep struct {
	Tex    *Texture
	Target uint32
}

func (s *CreateTextureStep) runInit(d *Device) {
	s.Tex.Handle = d.drv.GenTexture()
	s.Tex.Target = s.Target
	d.drv.BindTexture(0, s.Target, s.Tex.Handle)
}

// CreateBufferStep allocates one buffer name, binds it, and allocates
// backing store of the requested size and usage; content is
// uninitialized.
type CreateBufferStep struct {
	Buf    *Buffer
	Target uint32
	Size   int
	Usage  uint32
}

func (s *CreateBufferStep) runInit(d *Device) {
	s.Buf.Handle = d.drv.GenBuffer()
	s.Buf.Target = s.Target
	s.Buf.Size = s.Size
	s.Buf.Usage = s.Usage
	d.drv.BindBuffer(s.Target, s.Buf.Handle)
	d.drv.BufferData(s.Target, s.Size, s.Usage)
}

// BufferSubDataStep uploads bytes at Offset. Per §9 and §4.1, the bind
// target is always array-buffer regardless of the buffer's declared
// target — preserved as a known legacy quirk, not a bug to fix here. If
// DeleteData is set, the payload is released after upload.
type BufferSubDataStep struct {
	Buf        *Buffer
	Offset     int
	Data       []byte
	DeleteData bool
}

const glArrayBuffer = 0x8892

func (s *BufferSubDataStep) runInit(d *Device) {
	d.drv.BindBuffer(glArrayBuffer, s.Buf.Handle)
	d.drv.BufferSubData(glArrayBuffer, s.Offset, s.Data)
	if s.DeleteData {
		s.Data = nil
	}
}

// CreateShaderStep compiles Source. On failure the shader name is
// deleted, the handle cleared, and the resource marked invalid; the
// source block is always freed regardless of outcome (§4.1, §7).
//
// Per §9's flagged probable bug: the source sets Valid = true
// unconditionally at the end, even on the failure path that just set it
// false — the observable (always-true) behavior is preserved here
// pending a fix to the surrounding renderer, not corrected.
type CreateShaderStep struct {
	Sh     *Shader
	Stage  ShaderStage
	Source string
}

func (s *CreateShaderStep) runInit(d *Device) {
	defer func() { s.Source = "" }()

	handle := d.drv.CreateShader(uint32(s.Stage))
	if handle == 0 {
		panic("glcore: CreateShader returned a null shader handle")
	}
	d.drv.ShaderSource(handle, s.Source)
	ok, info := d.drv.CompileShader(handle)
	s.Sh.Handle = handle
	s.Sh.Stage = s.Stage
	if !ok {
		d.log.Logf("glcore: shader compile failed: %s", info)
		d.drv.DeleteShader(handle)
		s.Sh.Handle = 0
		s.Sh.Valid = false
	}
	s.Sh.Valid = true
}

// CreateProgramStep requires at least one non-null shader, attaches
// all of them, binds each declared attribute semantic to its fixed
// location, binds fragment outputs per the dual-source dialect table
// (§4.1), links, and on success resolves uniform queries and runs
// initializers.
type CreateProgramStep struct {
	Prog              *Program
	Shaders           []*Shader
	Attribs           []AttribBinding
	SupportDualSource bool
	Queries           []UniformQuery
	Inits             []UniformInit
}

func (s *CreateProgramStep) runInit(d *Device) {
	nonNull := 0
	for _, sh := range s.Shaders {
		if sh != nil && sh.Handle != 0 {
			nonNull++
		}
	}
	if nonNull == 0 {
		panic("glcore: CreateProgram given zero valid shaders")
	}

	handle := d.drv.CreateProgram()
	if handle == 0 {
		panic("glcore: CreateProgram returned a zero program handle")
	}
	for _, sh := range s.Shaders {
		if sh != nil && sh.Handle != 0 {
			d.drv.AttachShader(handle, sh.Handle)
		}
	}
	for _, a := range s.Attribs {
		d.drv.BindAttribLocation(handle, a.Location, a.Name)
	}

	d.bindFragOutputs(handle, s.SupportDualSource)

	ok, info := d.drv.LinkProgram(handle)
	if !ok {
		d.log.Logf("glcore: program link failed: %s", info)
		return // Per §7: log and abort this step, do not use the program.
	}

	s.Prog.Handle = handle
	s.Prog.Attribs = s.Attribs
	s.Prog.SupportDualSource = s.SupportDualSource
	s.Prog.Valid = true

	d.drv.UseProgram(handle)
	s.Prog.UniformLocs = make(map[string]int32, len(s.Queries))
	for _, q := range s.Queries {
		loc := d.drv.UniformLocation(handle, q.Name)
		*q.Dest = loc
		s.Prog.UniformLocs[q.Name] = loc
	}
	s.Prog.Queries = s.Queries

	for _, init := range s.Inits {
		if init.Slot == nil || *init.Slot == -1 {
			continue
		}
		switch init.Kind {
		case UniformInitSampler:
			d.drv.UniformSampler(*init.Slot, init.SamplerUnit)
		}
	}
	s.Prog.Inits = s.Inits
}

// bindFragOutputs implements §4.1's fragment-output binding table:
//
//	desktop + dual source        -> fragColor0@(0,0), fragColor1@(0,1)
//	desktop ≥3.3, no dual source -> fragColor0@0
//	ES3 + dual-source flag       -> EXT-suffixed indexed entry points
//
// Any other combination binds no fragment output explicitly. The
// dialect split (ARB-indexed vs EXT-indexed) lives inside the binding's
// BindFragDataLocationIndexed, not here.
func (d *Device) bindFragOutputs(prog uint32, supportDualSource bool) {
	if supportDualSource && d.probe.supportsDualSourceBlend {
		d.drv.BindFragDataLocationIndexed(prog, 0, 0, "fragColor0")
		d.drv.BindFragDataLocationIndexed(prog, 0, 1, "fragColor1")
		return
	}
	if !d.probe.isGLES && d.probe.VersionAtLeast(3, 3, 0) {
		d.drv.BindFragDataLocation(prog, 0, "fragColor0")
	}
}

// CreateInputLayoutStep issues no driver calls at init time: it only
// records Entries and their SemanticsMask on Layout. All binding work
// happens per draw via BindInputLayout render commands (§4.1).
type CreateInputLayoutStep struct {
	Layout  *InputLayout
	Entries []AttribEntry
}

func (s *CreateInputLayoutStep) runInit(d *Device) {
	var mask uint32
	for _, e := range s.Entries {
		mask |= 1 << e.Location
	}
	s.Layout.SemanticsMask = mask
	s.Layout.Entries = s.Entries
}

// CreateFramebufferStep dispatches to the framebuffer builder (§4.3).
type CreateFramebufferStep struct {
	Dst    **Framebuffer
	Width  int32
	Height int32
}

func (s *CreateFramebufferStep) runInit(d *Device) {
	*s.Dst = buildFramebuffer(d.drv, d.probe, d.binder, s.Width, s.Height, d.log)
}

// TextureImageStep binds the texture, uploads the image, frees the
// payload, then sets clamp-to-edge wrap and min/mag filtering per
// LinearFilter (§4.1). The bind is skipped only when currentlyBound is
// set and already holds the texture's handle; RunInitSteps never sets
// it, so steps run through RunInitSteps always bind.
type TextureImageStep struct {
	Tex          *Texture
	Level        int32
	Format, Type uint32
	Width, Height int32
	Pixels        []byte
	LinearFilter  bool

	currentlyBound *uint32 // optional "last bound" tracker; nil unless set by the caller.
}

func (s *TextureImageStep) runInit(d *Device) {
	if s.currentlyBound == nil || *s.currentlyBound != s.Tex.Handle {
		d.drv.BindTexture(0, s.Tex.Target, s.Tex.Handle)
		if s.currentlyBound != nil {
			*s.currentlyBound = s.Tex.Handle
		}
	}
	d.drv.TexImage2D(s.Tex.Target, s.Level, s.Width, s.Height, s.Format, s.Type, s.Pixels)
	s.Pixels = nil

	s.Tex.Level, s.Tex.Format, s.Tex.Type = s.Level, s.Format, s.Type
	s.Tex.Width, s.Tex.Height = s.Width, s.Height

	filter := int32(glLinear)
	if !s.LinearFilter {
		filter = glNearest
	}
	d.drv.TexParameteri(s.Tex.Target, glTextureWrapS, glClampToEdge)
	d.drv.TexParameteri(s.Tex.Target, glTextureWrapT, glClampToEdge)
	d.drv.TexParameteri(s.Tex.Target, glTextureMinFilter, filter)
	d.drv.TexParameteri(s.Tex.Target, glTextureMagFilter, filter)
	s.Tex.WrapS, s.Tex.WrapT = glClampToEdge, glClampToEdge
	s.Tex.MinFilter, s.Tex.MagFilter = filter, filter
}

// TextureSubDataStep is reserved; currently a no-op (§4.1, §9 open
// question on whether it is meant to upload a sub-rectangle).
type TextureSubDataStep struct{}

func (s *TextureSubDataStep) runInit(d *Device) {}

const glNearest = 0x2600

// RunInitSteps executes an ordered sequence of init steps, taking
// ownership of embedded heap payloads (§4.1, §6). Steps execute
// strictly in list order since later steps may depend on resources
// created by earlier ones.
func (d *Device) RunInitSteps(steps []InitStep) {
	for _, step := range steps {
		if step == nil {
			panic(fmt.Errorf("glcore: nil init step"))
		}
		step.runInit(d)
	}
}
