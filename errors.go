// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package brewbump

import (
	"errors"
	"fmt"
)

// ErrEmptyChecksum is returned when the selected sha256 entry has no value to replace
var ErrEmptyChecksum = errors.New("selected checksum is empty")

// MissingParameterError is returned when a required environment variable is not set
type MissingParameterError struct {
	Name string
}

var _ error = &MissingParameterError{}

// Error returns the message naming the missing parameter
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s is not set", e.Name)
}

// ShapeError is returned when a formula does not contain the expected number of sha256 entries
type ShapeError struct {
	Matches  int
	Expected int
}

var _ error = &ShapeError{}

// Error returns the observed and expected match counts
func (e *ShapeError) Error() string {
	return fmt.Sprintf("number of sha256 matches is %d, expected %d", e.Matches, e.Expected)
}

// InvalidTargetError is returned when a target does not own a checksum position
type InvalidTargetError struct {
	Target Target
}

var _ error = &InvalidTargetError{}

// Error returns the rejected target
func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("TARGET %s is not a valid target", e.Target)
}
