// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewCities is returned when fewer than two cities are requested.
var ErrTooFewCities = errors.New("builder: too few cities")

// ErrInvalidProbability is returned when Density is outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrOptionViolation is returned when an option value is out of its domain.
var ErrOptionViolation = errors.New("builder: invalid option value")

func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", method, fmt.Sprintf(format, args...))
}
