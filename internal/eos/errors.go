package eos

import "errors"

// Domain errors for equation-of-state evaluation.
var (
	// ErrShapeMismatch indicates input slices of unequal length.
	ErrShapeMismatch = errors.New("eos: input slices must have equal length")

	// ErrUnknownVariant indicates an unrecognized formulation name.
	ErrUnknownVariant = errors.New("eos: unknown variant")
)
