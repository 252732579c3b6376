//go:build glfw30 && !tinygo && cgo

package host

import (
	gl "github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.0/glfw"

	"github.com/soypat/glcq/glcore"
)

// Window wraps a current GLFW 3.0 window together with the glcore.Device
// bound to its context. Built only under the glfw30 tag, for hosts stuck
// on the older binding.
type Window struct {
	*glfw.Window
	Device *glcore.Device
}

// Open is the GLFW 3.0 counterpart of the default Open in
// window_glfw33.go.
func Open(cfg WindowConfig) (*Window, func(), error) {
	if ok := glfw.Init(); !ok {
		return nil, nil, errNotInitialized
	}

	glfw.WindowHint(glfw.Resizable, b2i(!cfg.NotResizable))
	major, minor := 4, 6
	if cfg.Version != [2]int{} {
		major, minor = cfg.Version[0], cfg.Version[1]
	}
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenglProfile, glfw.OpenglCoreProfile)
	glfw.WindowHint(glfw.OpenglForwardCompatible, b2i(cfg.ForwardCompat))

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

var errNotInitialized = errNotInit{}

type errNotInit struct{}

func (errNotInit) Error() string { return "failed to initialize GLFW v3.0" }
