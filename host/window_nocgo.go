//go:build tinygo || !cgo

package host

import "errors"

// Window is a stub on build targets without cgo: there is no GL driver
// to bind to, matching glcore's own nocgo fail-loud stance.
type Window struct{}

// Open always fails without cgo.
func Open(cfg WindowConfig) (*Window, func(), error) {
	return nil, nil, errors.New("host: window creation requires cgo")
}
