// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrUnknownShape      = errors.New("unknown waveform shape")
	ErrInvalidFrequency  = errors.New("frequency must be positive")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidDuration   = errors.New("duration must not be negative")
)
