//go:build tinygo || !cgo

package glcore

// ProbeFeatures has no backing implementation without cgo (§9, mirrors
// newAPI's nocgo stance): there is no driver to query. Callers on these
// build targets must construct a FeatureProbe by hand for tests.
func ProbeFeatures(isGLES, gles3 bool) FeatureProbe {
	return FeatureProbe{isGLES: isGLES, gles3: gles3}
}
