// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrNilSource          = errors.New("source is nil")
	ErrEmptySoundID       = errors.New("sound id must not be empty")
	ErrDuplicateSoundID   = errors.New("sound id already in use")
	ErrSampleRateMismatch = errors.New("source sample rate does not match engine")
)
