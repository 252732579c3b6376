//go:build !glfw30 && !tinygo && cgo

package host

import (
	gl "github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/soypat/glcq/glcore"
)

// Window wraps a current GLFW window together with the glcore.Device
// bound to its context.
type Window struct {
	*glfw.Window
	Device *glcore.Device
}

// Open creates a window, makes its context current, probes driver
// features, and constructs a ready-to-use Device (§1, §6). The caller
// owns the returned teardown func and must call it exactly once.
func Open(cfg WindowConfig) (*Window, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, err
	}

	glfw.WindowHint(glfw.Resizable, b2i(!cfg.NotResizable))
	major, minor := 4, 6
	if cfg.Version != [2]int{} {
		major, minor = cfg.Version[0], cfg.Version[1]
	}
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, b2i(cfg.ForwardCompat))
	if cfg.HideWindow {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	w, h := zdefault(cfg.Width, 640), zdefault(cfg.Height, 480)
	glfwWin, err := glfw.CreateWindow(w, h, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, err
	}
	glfwWin.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, err
	}

	probe := glcore.ProbeFeatures(false, false)
	dev := glcore.NewDevice(probe, nil)
	dev.SetTargetSize(int32(w), int32(h))
	dev.CreateDeviceObjects()

	win := &Window{Window: glfwWin, Device: dev}
	teardown := func() {
		dev.DestroyDeviceObjects()
		glfw.Terminate()
	}
	return win, teardown, nil
}
