package glcore

import "strconv"

// glError mirrors one GL_* error code drained from glGetError.
type glError uint32

const (
	errInvalidEnum                  = 0x0500
	errInvalidValue                 = 0x0501
	errInvalidOperation              = 0x0502
	errInvalidFramebufferOperation   = 0x0506
	errOutOfMemory                   = 0x0505
)

func (e glError) String() string {
	switch uint32(e) {
	case errInvalidEnum:
		return "invalid enum"
	case errInvalidValue:
		return "invalid value"
	case errInvalidOperation:
		return "invalid operation"
	case errInvalidFramebufferOperation:
		return "invalid framebuffer operation"
	case errOutOfMemory:
		return "out of memory"
	default:
		return "glError(" + strconv.Itoa(int(e)) + ")"
	}
}

func (e glError) Error() string { return e.String() }

// drainGLErrors repeatedly calls getError until it reports no-error,
// returning every code seen. Bounded so a context that never clears
// (terminated context, broken driver) cannot loop forever.
func drainGLErrors(getError func() uint32) []error {
	const noError = 0
	const maxDrain = 64
	var errs []error
	for i := 0; i < maxDrain; i++ {
		code := getError()
		if code == noError {
			return errs
		}
		errs = append(errs, glError(code))
	}
	return errs
}
