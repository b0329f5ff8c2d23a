// Package pricing holds the static rate tables and the pure monthly-cost
// estimators built on them. Rates are hand-maintained list prices in USD;
// they perform no I/O and are immutable for the process lifetime.
package pricing

import "errors"

// HoursPerMonth is the fixed hours-to-month conversion used by every
// estimator.
const HoursPerMonth = 730

// ErrUnknownShape marks a shape or storage class missing from the rate
// tables. Every estimator returns a zero estimate alongside it, so callers
// can log the condition and still keep the zero.
var ErrUnknownShape = errors.New("unknown shape")
