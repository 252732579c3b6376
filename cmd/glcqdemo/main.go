// Command glcqdemo drives glcore.Device with a hand-built step list: one
// CREATE_* pass that uploads a triangle, then one RENDER pass per frame.
// It exists to exercise the core end to end, not as a reimplementation of
// a full renderer.
package main

import (
	_ "embed"
	"log"
	"math"
	"runtime"
	"strings"
	"time"

	math32 "github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/soypat/glcq/glcore"
	"github.com/soypat/glcq/host"
	"github.com/soypat/glcq/shadersrc"
)

//go:embed triangle.glsl
var combinedShader string

var triangleVertices = []float32{
	-0.5, -0.5,
	0.0, 0.5,
	0.5, -0.5,
}

func init() {
	runtime.LockOSThread()
}

func main() {
	win, teardown, err := host.Open(host.WindowConfig{
		Title:  "glcq demo",
		Width:  800,
		Height: 800,
	})
	if err != nil {
		log.Fatalln("failed to open window:", err)
	}
	defer teardown()

	dev := win.Device

	src, err := shadersrc.Parse(strings.NewReader(combinedShader))
	if err != nil {
		log.Fatalln("failed to parse shader source:", err)
	}

	var vbuf glcore.Buffer
	var vsh, fsh glcore.Shader
	var prog glcore.Program
	var layout glcore.InputLayout
	var xformLoc int32

	vertexData := f32SliceToBytes(triangleVertices)

	dev.RunInitSteps([]glcore.InitStep{
		&glcore.CreateBufferStep{
			Buf:    &vbuf,
			Target: 0x8892, // GL_ARRAY_BUFFER
			Size:   len(vertexData),
			Usage:  0x88E4, // GL_STATIC_DRAW
		},
		&glcore.BufferSubDataStep{
			Buf:        &vbuf,
			Offset:     0,
			Data:       vertexData,
			DeleteData: true,
		},
		&glcore.CreateShaderStep{Sh: &vsh, Stage: glcore.StageVertex, Source: src.Vertex},
		&glcore.CreateShaderStep{Sh: &fsh, Stage: glcore.StageFragment, Source: src.Fragment},
		&glcore.CreateProgramStep{
			Prog:    &prog,
			Shaders: []*glcore.Shader{&vsh, &fsh},
			Attribs: []glcore.AttribBinding{{Name: "vert", Location: 0}},
			Queries: []glcore.UniformQuery{{Name: "u_xform", Dest: &xformLoc}},
		},
		&glcore.CreateInputLayoutStep{
			Layout: &layout,
			Entries: []glcore.AttribEntry{
				{Location: 0, Packing: 2, Type: 0x1406 /* GL_FLOAT */, Stride: 2 * 4},
			},
		},
	})

	start := time.Now()
	for !win.ShouldClose() {
		angle := float32(time.Since(start).Seconds())
		xform := zRotationMat4(angle)

		dev.RunSteps([]glcore.RenderStep{{
			Target: nil,
			Commands: []glcore.RenderCommand{
				glcore.ClearCmd{Mask: glcore.ClearColor, ColorRGBA: 0x000000FF},
				glcore.ViewportCmd{Width: 800, Height: 800, Far: 1},
				glcore.BindProgramCmd{Prog: &prog},
				glcore.UniformMatrix4Cmd{LocPtr: &xformLoc, Value: xform},
				glcore.BindBufferCmd{Target: 0x8892, Buf: &vbuf},
				glcore.BindInputLayoutCmd{Layout: &layout},
				glcore.DrawCmd{Mode: 0x0004 /* GL_TRIANGLES */, First: 0, Count: 3},
			},
		}})

		win.SwapBuffers()
		glfw.PollEvents()
		if win.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}
	}
}

// zRotationMat4 returns a row-major 4x4 rotation matrix about the Z axis,
// the only rotation this demo needs.
func zRotationMat4(angleRadians float32) [16]float32 {
	s, c := math32.Sincos(angleRadians)
	return [16]float32{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func f32SliceToBytes(v []float32) []byte {
	out := make([]byte, 0, len(v)*4)
	for _, f := range v {
		bits := math.Float32bits(f)
		out = append(out, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
	}
	return out
}
