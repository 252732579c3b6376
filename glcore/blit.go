package glcore

import "fmt"

// TexelAspect selects which image aspect a Copy touches. Only color is
// currently implemented; depth is reserved (§4.4, §9).
type TexelAspect int

const (
	AspectColor TexelAspect = iota
	AspectDepth
)

// Copy performs a cross-framebuffer texel copy of a w×h rectangle from
// (srcX,srcY) on srcTex to (dstX,dstY) on dstTex, dispatching through
// the driver's CopySubImage (desktop ARB, NV fallback, or ES OES — the
// priority order lives inside the binding, not here). Level and Z are
// always 0, depth always 1. Requesting the depth aspect returns an error
// without calling the driver; depth copies are not performed (§4.4).
func (d *Device) Copy(srcTex, dstTex *Texture, aspect TexelAspect, srcX, srcY, dstX, dstY, w, h int32) error {
	if aspect == AspectDepth {
		return fmt.Errorf("glcore: depth-aspect Copy is not implemented")
	}
	return d.drv.CopySubImage(srcTex.Handle, dstTex.Handle, srcX, srcY, dstX, dstY, w, h)
}

// PerformBlit is a documented interface awaiting specification (§4.4,
// §9 Open Question): the source only carries its signature shape, not
// an algorithm. It is intentionally left unimplemented rather than
// guessed.
func (d *Device) PerformBlit(src, dst *Framebuffer, srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter uint32) error {
	panic("glcore: PerformBlit is an open interface, not yet specified")
}

// PerformReadback is a documented interface awaiting specification
// (§4.4, §9 Open Question).
func (d *Device) PerformReadback(src *Framebuffer, x, y, width, height int32, format, xtype uint32, dst []byte) error {
	panic("glcore: PerformReadback is an open interface, not yet specified")
}

// PerformReadbackImage is a documented interface awaiting specification
// (§4.4, §9 Open Question).
func (d *Device) PerformReadbackImage(src *Framebuffer, x, y, width, height int32, format, xtype uint32) (*Texture, error) {
	panic("glcore: PerformReadbackImage is an open interface, not yet specified")
}

// CopyReadbackBuffer is the entry point for CPU-side format conversion
// of a previously captured readback buffer. The source leaves this
// signature-only (§6, §9 Open Question); it performs no conversion and
// panics when called, rather than guessing an implementation.
func (d *Device) CopyReadbackBuffer(width, height int32, srcFormat, destFormat uint32, pixelStride int, pixels []byte) error {
	panic("glcore: CopyReadbackBuffer is an open interface, not yet specified")
}
