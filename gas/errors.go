// SPDX-License-Identifier: MIT

package gas

import "errors"

var (
	// ErrNotFound is returned by lookups when no component matches the
	// identifier, or no interaction record matches the pair.
	ErrNotFound = errors.New("gas: not found")

	// ErrInvalidRecord indicates a record whose critical constants or
	// molecular weight are missing, non-positive or unparsable.
	ErrInvalidRecord = errors.New("gas: invalid record")

	// ErrUnknownFormat indicates a database file extension other than
	// .json, .yaml or .yml.
	ErrUnknownFormat = errors.New("gas: unknown database format")
)
