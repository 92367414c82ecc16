// SPDX-License-Identifier: EPL-2.0

package panner

import "errors"

var (
	ErrNilGraph = errors.New("graph is nil")
)
