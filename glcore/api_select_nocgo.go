//go:build tinygo || !cgo

package glcore

// newAPI has no backing implementation without cgo: none of the
// go-gl/gl bindings are available. Callers on these build targets
// cannot construct a usable Device; NewDevice will panic on first
// driver call rather than silently doing nothing, matching the
// teacher's glgl_nocgo.go fail-loud stance for the analogous case.
func newAPI(probe FeatureProbe) api {
	return nil
}
