//go:build !tinygo && cgo

package glcore

// newAPI picks exactly one binding for the lifetime of the process,
// based on the immutable FeatureProbe (§9 "Dialect branching"). ES
// always gets the ES binding; desktop gets ARB/core when available,
// otherwise the EXT-only legacy binding.
func newAPI(probe FeatureProbe) api {
	switch {
	case probe.isGLES:
		return newGLESBinding(probe)
	case probe.arbFramebufferObject:
		return newCoreBinding(probe)
	default:
		return newCompatBinding(probe)
	}
}
