//go:build !tinygo && cgo

package glcore

import (
	coregl "github.com/go-gl/gl/v4.6-core/gl"
	gles2 "github.com/go-gl/gl/v3.1/gles2"
)

const (
	glExtensions       = 0x1F03
	glMajorVersion     = 0x821B
	glMinorVersion     = 0x821C
	glNumExtensions    = 0x821D
	glMaxTextureMaxAnisotropyExt = 0x84FF
)

// extensionSet is a parsed GL_EXTENSIONS string, grounded on the
// exts.Present(name) query pattern used throughout the pack for
// capability checks.
type extensionSet map[string]struct{}

func parseExtensions(s string) extensionSet {
	set := make(extensionSet)
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				set[s[start:i]] = struct{}{}
			}
			start = i + 1
		}
	}
	return set
}

func (e extensionSet) has(name string) bool {
	_, ok := e[name]
	return ok
}

// ProbeFeatures queries the extension string and version integers of
// the current GL context exactly once and returns an immutable
// FeatureProbe (§3). isGLES and gles3 are supplied by the caller since
// they come from context-creation choices the core does not make
// itself (window/context creation is out of scope, §1); everything
// else is read from the driver.
func ProbeFeatures(isGLES, gles3 bool) FeatureProbe {
	if isGLES {
		return probeGLESFeatures(gles3)
	}
	return probeDesktopFeatures()
}

func probeDesktopFeatures() FeatureProbe {
	extStr := coregl.GoStr(coregl.GetString(glExtensions))
	exts := parseExtensions(extStr)

	var major, minor int32
	coregl.GetIntegerv(glMajorVersion, &major)
	coregl.GetIntegerv(glMinorVersion, &minor)

	p := FeatureProbe{
		major: int(major),
		minor: int(minor),

		arbFramebufferObject: exts.has("GL_ARB_framebuffer_object"),
		extFramebufferObject: exts.has("GL_EXT_framebuffer_object"),
		arbCopyImage:         exts.has("GL_ARB_copy_image"),
		nvCopyImage:          exts.has("GL_NV_copy_image"),
		nvFramebufferBlit:    exts.has("GL_NV_framebuffer_blit") || exts.has("GL_ARB_framebuffer_object"),

		supportsDualSourceBlend: exts.has("GL_ARB_blend_func_extended"),
	}
	if exts.has("GL_EXT_texture_filter_anisotropic") || exts.has("GL_ARB_texture_filter_anisotropic") {
		var maxAniso float32
		coregl.GetFloatv(glMaxTextureMaxAnisotropyExt, &maxAniso)
		p.maxAnisotropy = maxAniso
	}
	return p
}

func probeGLESFeatures(gles3 bool) FeatureProbe {
	extStr := gles2.GoStr(gles2.GetString(glExtensions))
	exts := parseExtensions(extStr)

	var major, minor int32
	if gles3 {
		gles2.GetIntegerv(glMajorVersion, &major)
		gles2.GetIntegerv(glMinorVersion, &minor)
	} else {
		major, minor = 2, 0
	}

	p := FeatureProbe{
		isGLES: true,
		gles3:  gles3,
		major:  int(major),
		minor:  int(minor),

		arbFramebufferObject: true, // ES folds FBOs into core.
		nvFramebufferBlit:    gles3 || exts.has("GL_NV_framebuffer_blit"),
		nvCopyImage:          exts.has("GL_NV_copy_image") || exts.has("GL_EXT_copy_image") || exts.has("GL_OES_copy_image"),

		oesPackedDepthStencil: gles3 || exts.has("GL_OES_packed_depth_stencil"),
		oesDepth24:            gles3 || exts.has("GL_OES_depth24"),

		supportsDualSourceBlend: exts.has("GL_EXT_blend_func_extended"),
	}
	if exts.has("GL_EXT_texture_filter_anisotropic") {
		var maxAniso float32
		gles2.GetFloatv(glMaxTextureMaxAnisotropyExt, &maxAniso)
		p.maxAnisotropy = maxAniso
	}
	return p
}
