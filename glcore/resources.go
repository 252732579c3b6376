package glcore

// Resource records hold driver handles by value with no automatic
// release at scope end; lifecycle is externally controlled by step
// submission (§9 "Raw handle ownership"). Only Framebuffer carries an
// explicit destructor.

// Texture is a GPU texture object. Populated by TEXTURE_IMAGE after
// creation by CREATE_TEXTURE; the core never deletes it during step
// execution.
type Texture struct {
	Handle uint32
	Target uint32

	// Fields of the last upload.
	Level  int32
	Format uint32
	Type   uint32
	Width  int32
	Height int32

	// Current sampler state.
	WrapS, WrapT   int32
	MinFilter      int32
	MagFilter      int32
	LODMin, LODMax float32
	LODBias        float32
	Anisotropy     float32
}

// Buffer is a GPU buffer object.
type Buffer struct {
	Handle  uint32
	Target  uint32 // default binding target.
	Size    int
	Usage   uint32
}

// ShaderStage distinguishes vertex and fragment stages.
type ShaderStage uint32

const (
	StageVertex   ShaderStage = 0x8B31 // GL_VERTEX_SHADER
	StageFragment ShaderStage = 0x8B30 // GL_FRAGMENT_SHADER
)

// Shader is a compiled shader stage.
type Shader struct {
	Handle uint32
	Stage  ShaderStage
	Valid  bool
}

// AttribBinding binds a vertex attribute semantic name to a fixed
// location.
type AttribBinding struct {
	Name     string
	Location uint32
}

// UniformQuery resolves a uniform name to a caller-provided location
// slot, written by the init interpreter after a successful link.
type UniformQuery struct {
	Name string
	Dest *int32
}

// UniformInitKind enumerates the uniform initializer kinds defined by
// the source. Only the integer-sampler kind is currently specified.
type UniformInitKind int

const (
	UniformInitSampler UniformInitKind = iota
)

// UniformInit runs once, immediately after link, writing a constant
// value to a uniform whose location slot is not -1.
type UniformInit struct {
	Kind     UniformInitKind
	Slot     *int32
	SamplerUnit int32
}

// Program is a linked program.
type Program struct {
	Handle             uint32
	Attribs            []AttribBinding
	Queries            []UniformQuery
	Inits              []UniformInit
	SupportDualSource  bool
	Valid              bool

	// UniformLocs is the cached uniform table render commands fall
	// back to when a command carries no cached location pointer (§4.2
	// "Uniform4f / Uniform4i / UniformMatrix4" resolution order).
	UniformLocs map[string]int32
}

// InputLayout describes a vertex attribute layout. Attribute indices
// occupy [0,8); semanticsMask equals the set of entry.Location values.
type InputLayout struct {
	SemanticsMask uint32
	Entries       []AttribEntry
}

// AttribEntry is one vertex attribute pointer configuration within an
// InputLayout.
type AttribEntry struct {
	Location  uint32
	Packing   int32
	Type      uint32
	Normalized bool
	Stride    int32
	Offset    int32
}

const maxAttribLocations = 8
