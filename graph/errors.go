// SPDX-License-Identifier: EPL-2.0

package graph

import "errors"

var (
	ErrNilNode           = errors.New("node is nil")
	ErrNodeAlreadyAdded  = errors.New("node already added to a graph")
	ErrNodeNotInGraph    = errors.New("node not added to this graph")
	ErrInvalidBus        = errors.New("bus index out of range")
	ErrChannelMismatch   = errors.New("incompatible channel counts")
	ErrBusLayout         = errors.New("invalid bus layout")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
