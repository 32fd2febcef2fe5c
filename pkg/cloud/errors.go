// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cloud

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no words to select from.
	ErrEmptyInput = errors.New("no words to select from")
	// ErrInvalidSelectionSize is returned when N is outside [1, distinct words].
	ErrInvalidSelectionSize = errors.New("invalid selection size")
)

// SizeError describes a rejected selection size.
type SizeError struct {
	Requested int
	Available int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: requested %d words, must be between 1 and %d", ErrInvalidSelectionSize, e.Requested, e.Available)
}

// Unwrap lets errors.Is match ErrInvalidSelectionSize.
func (e *SizeError) Unwrap() error {
	return ErrInvalidSelectionSize
}
