package convert

import "errors"

// Construction-time validation errors. The streaming path never fails; these
// are only returned by manager constructors and Builder.Build.
var (
	// ErrInvalidRatio indicates a conversion ratio that is not a positive
	// finite number.
	ErrInvalidRatio = errors.New("invalid ratio")

	// ErrInvalidAttenuation indicates a stopband attenuation of zero dB
	// or less.
	ErrInvalidAttenuation = errors.New("invalid attenuation")

	// ErrInvalidQuantify indicates a quantify count of zero or less.
	ErrInvalidQuantify = errors.New("invalid quantify")

	// ErrInvalidPassWidth indicates a transition band width outside (0, 1).
	ErrInvalidPassWidth = errors.New("invalid pass width")
)
