// SPDX-License-Identifier: MPL-2.0

// Package refined provides validated numeric newtypes ("brands"). Each brand
// is a defined type over a plain numeric kind whose constructor enforces a
// refinement predicate; the runtime representation is the raw number.
//
// Every brand comes in three constructor variants:
//
//	NewX(v)  (X, error)   validating constructor
//	MustX(v) X            panics on invalid input
//	TryX(v)  (X, bool)    comma-ok variant
//
// A constructed brand always converts back to the identical numeric value.
package refined

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrNotPositive is the sentinel error wrapped by NotPositiveError.
	ErrNotPositive = errors.New("value is not positive")
	// ErrNegative is the sentinel error wrapped by NegativeError.
	ErrNegative = errors.New("value is negative")
	// ErrZero is the sentinel error wrapped by ZeroError.
	ErrZero = errors.New("value is zero")
	// ErrNotWhole is the sentinel error wrapped by NotWholeError.
	ErrNotWhole = errors.New("value is not a whole number")
	// ErrNotEven is the sentinel error wrapped by NotEvenError.
	ErrNotEven = errors.New("value is not even")
	// ErrNotOdd is the sentinel error wrapped by NotOddError.
	ErrNotOdd = errors.New("value is not odd")
	// ErrNotNatural is the sentinel error wrapped by NotNaturalError.
	ErrNotNatural = errors.New("value is not a natural number")
	// ErrPercentRange is the sentinel error wrapped by PercentRangeError.
	ErrPercentRange = errors.New("value is outside the percent range")
	// ErrPortRange is the sentinel error wrapped by PortRangeError.
	ErrPortRange = errors.New("value is outside the port range")
)

type (
	// Positive is a float64 strictly greater than zero. NaN is rejected.
	Positive float64

	// NotPositiveError is returned when a Positive candidate is zero,
	// negative, or NaN. It wraps ErrNotPositive for errors.Is().
	NotPositiveError struct {
		Value float64
	}

	// NonNegative is a float64 greater than or equal to zero. NaN is rejected.
	NonNegative float64

	// NegativeError is returned when a NonNegative candidate is negative
	// or NaN. It wraps ErrNegative for errors.Is().
	NegativeError struct {
		Value float64
	}

	// NonZero is a float64 that is not zero. NaN is rejected.
	NonZero float64

	// ZeroError is returned when a NonZero candidate is zero or NaN.
	// It wraps ErrZero for errors.Is().
	ZeroError struct {
		Value float64
	}

	// Whole is a float64 carrying an integral value (no fractional part).
	// NaN and infinities are rejected.
	Whole float64

	// NotWholeError is returned when a Whole candidate has a fractional
	// part or is not finite. It wraps ErrNotWhole for errors.Is().
	NotWholeError struct {
		Value float64
	}

	// Even is an int64 divisible by two.
	Even int64

	// NotEvenError is returned when an Even candidate is odd.
	// It wraps ErrNotEven for errors.Is().
	NotEvenError struct {
		Value int64
	}

	// Odd is an int64 not divisible by two.
	Odd int64

	// NotOddError is returned when an Odd candidate is even.
	// It wraps ErrNotOdd for errors.Is().
	NotOddError struct {
		Value int64
	}

	// Natural is an int64 greater than or equal to one.
	Natural int64

	// NotNaturalError is returned when a Natural candidate is below one.
	// It wraps ErrNotNatural for errors.Is().
	NotNaturalError struct {
		Value int64
	}

	// Percent is a float64 in the closed interval [0, 100].
	Percent float64

	// PercentRangeError is returned when a Percent candidate falls outside
	// [0, 100] or is NaN. It wraps ErrPercentRange for errors.Is().
	PercentRangeError struct {
		Value float64
	}

	// Port is a usable TCP/UDP port in the range 1-65535. Unlike a listen
	// port, zero ("auto-select") is not a valid Port.
	Port int

	// PortRangeError is returned when a Port candidate falls outside
	// 1-65535. It wraps ErrPortRange for errors.Is().
	PortRangeError struct {
		Value int
	}
)

// --- Positive ---

// NewPositive validates v > 0 and returns it as a Positive.
func NewPositive(v float64) (Positive, error) {
	if math.IsNaN(v) || v <= 0 {
		return 0, &NotPositiveError{Value: v}
	}
	return Positive(v), nil
}

// MustPositive is NewPositive that panics on invalid input.
func MustPositive(v float64) Positive { return must(NewPositive(v)) }

// TryPositive is the comma-ok variant of NewPositive.
func TryPositive(v float64) (Positive, bool) { return try(NewPositive(v)) }

// Float64 returns the underlying numeric value.
func (p Positive) Float64() float64 { return float64(p) }

// String returns the decimal string representation of the Positive.
func (p Positive) String() string { return formatFloat(float64(p)) }

// Error implements the error interface for NotPositiveError.
func (e *NotPositiveError) Error() string {
	return fmt.Sprintf("invalid positive number %v: must be > 0", e.Value)
}

// Unwrap returns ErrNotPositive for errors.Is() compatibility.
func (e *NotPositiveError) Unwrap() error { return ErrNotPositive }

// --- NonNegative ---

// NewNonNegative validates v >= 0 and returns it as a NonNegative.
func NewNonNegative(v float64) (NonNegative, error) {
	if math.IsNaN(v) || v < 0 {
		return 0, &NegativeError{Value: v}
	}
	return NonNegative(v), nil
}

// MustNonNegative is NewNonNegative that panics on invalid input.
func MustNonNegative(v float64) NonNegative { return must(NewNonNegative(v)) }

// TryNonNegative is the comma-ok variant of NewNonNegative.
func TryNonNegative(v float64) (NonNegative, bool) { return try(NewNonNegative(v)) }

// Float64 returns the underlying numeric value.
func (n NonNegative) Float64() float64 { return float64(n) }

// String returns the decimal string representation of the NonNegative.
func (n NonNegative) String() string { return formatFloat(float64(n)) }

// Error implements the error interface for NegativeError.
func (e *NegativeError) Error() string {
	return fmt.Sprintf("invalid non-negative number %v: must be >= 0", e.Value)
}

// Unwrap returns ErrNegative for errors.Is() compatibility.
func (e *NegativeError) Unwrap() error { return ErrNegative }

// --- NonZero ---

// NewNonZero validates v != 0 and returns it as a NonZero.
func NewNonZero(v float64) (NonZero, error) {
	if math.IsNaN(v) || v == 0 {
		return 0, &ZeroError{Value: v}
	}
	return NonZero(v), nil
}

// MustNonZero is NewNonZero that panics on invalid input.
func MustNonZero(v float64) NonZero { return must(NewNonZero(v)) }

// TryNonZero is the comma-ok variant of NewNonZero.
func TryNonZero(v float64) (NonZero, bool) { return try(NewNonZero(v)) }

// Float64 returns the underlying numeric value.
func (n NonZero) Float64() float64 { return float64(n) }

// String returns the decimal string representation of the NonZero.
func (n NonZero) String() string { return formatFloat(float64(n)) }

// Error implements the error interface for ZeroError.
func (e *ZeroError) Error() string {
	return fmt.Sprintf("invalid non-zero number %v: must not be 0", e.Value)
}

// Unwrap returns ErrZero for errors.Is() compatibility.
func (e *ZeroError) Unwrap() error { return ErrZero }

// --- Whole ---

// NewWhole validates that v is finite with no fractional part and returns
// it as a Whole.
func NewWhole(v float64) (Whole, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, &NotWholeError{Value: v}
	}
	return Whole(v), nil
}

// MustWhole is NewWhole that panics on invalid input.
func MustWhole(v float64) Whole { return must(NewWhole(v)) }

// TryWhole is the comma-ok variant of NewWhole.
func TryWhole(v float64) (Whole, bool) { return try(NewWhole(v)) }

// Float64 returns the underlying numeric value.
func (w Whole) Float64() float64 { return float64(w) }

// String returns the decimal string representation of the Whole.
func (w Whole) String() string { return formatFloat(float64(w)) }

// Error implements the error interface for NotWholeError.
func (e *NotWholeError) Error() string {
	return fmt.Sprintf("invalid whole number %v: must have no fractional part", e.Value)
}

// Unwrap returns ErrNotWhole for errors.Is() compatibility.
func (e *NotWholeError) Unwrap() error { return ErrNotWhole }

// --- Even ---

// NewEven validates that v is divisible by two and returns it as an Even.
func NewEven(v int64) (Even, error) {
	if v%2 != 0 {
		return 0, &NotEvenError{Value: v}
	}
	return Even(v), nil
}

// MustEven is NewEven that panics on invalid input.
func MustEven(v int64) Even { return must(NewEven(v)) }

// TryEven is the comma-ok variant of NewEven.
func TryEven(v int64) (Even, bool) { return try(NewEven(v)) }

// Int64 returns the underlying numeric value.
func (e Even) Int64() int64 { return int64(e) }

// String returns the decimal string representation of the Even.
func (e Even) String() string { return strconv.FormatInt(int64(e), 10) }

// Error implements the error interface for NotEvenError.
func (e *NotEvenError) Error() string {
	return fmt.Sprintf("invalid even number %d: must be divisible by 2", e.Value)
}

// Unwrap returns ErrNotEven for errors.Is() compatibility.
func (e *NotEvenError) Unwrap() error { return ErrNotEven }

// --- Odd ---

// NewOdd validates that v is not divisible by two and returns it as an Odd.
func NewOdd(v int64) (Odd, error) {
	if v%2 == 0 {
		return 0, &NotOddError{Value: v}
	}
	return Odd(v), nil
}

// MustOdd is NewOdd that panics on invalid input.
func MustOdd(v int64) Odd { return must(NewOdd(v)) }

// TryOdd is the comma-ok variant of NewOdd.
func TryOdd(v int64) (Odd, bool) { return try(NewOdd(v)) }

// Int64 returns the underlying numeric value.
func (o Odd) Int64() int64 { return int64(o) }

// String returns the decimal string representation of the Odd.
func (o Odd) String() string { return strconv.FormatInt(int64(o), 10) }

// Error implements the error interface for NotOddError.
func (e *NotOddError) Error() string {
	return fmt.Sprintf("invalid odd number %d: must not be divisible by 2", e.Value)
}

// Unwrap returns ErrNotOdd for errors.Is() compatibility.
func (e *NotOddError) Unwrap() error { return ErrNotOdd }

// --- Natural ---

// NewNatural validates v >= 1 and returns it as a Natural.
func NewNatural(v int64) (Natural, error) {
	if v < 1 {
		return 0, &NotNaturalError{Value: v}
	}
	return Natural(v), nil
}

// MustNatural is NewNatural that panics on invalid input.
func MustNatural(v int64) Natural { return must(NewNatural(v)) }

// TryNatural is the comma-ok variant of NewNatural.
func TryNatural(v int64) (Natural, bool) { return try(NewNatural(v)) }

// Int64 returns the underlying numeric value.
func (n Natural) Int64() int64 { return int64(n) }

// String returns the decimal string representation of the Natural.
func (n Natural) String() string { return strconv.FormatInt(int64(n), 10) }

// Error implements the error interface for NotNaturalError.
func (e *NotNaturalError) Error() string {
	return fmt.Sprintf("invalid natural number %d: must be >= 1", e.Value)
}

// Unwrap returns ErrNotNatural for errors.Is() compatibility.
func (e *NotNaturalError) Unwrap() error { return ErrNotNatural }

// --- Percent ---

// NewPercent validates 0 <= v <= 100 and returns it as a Percent.
func NewPercent(v float64) (Percent, error) {
	if math.IsNaN(v) || v < 0 || v > 100 {
		return 0, &PercentRangeError{Value: v}
	}
	return Percent(v), nil
}

// MustPercent is NewPercent that panics on invalid input.
func MustPercent(v float64) Percent { return must(NewPercent(v)) }

// TryPercent is the comma-ok variant of NewPercent.
func TryPercent(v float64) (Percent, bool) { return try(NewPercent(v)) }

// Float64 returns the underlying numeric value.
func (p Percent) Float64() float64 { return float64(p) }

// Ratio returns the percent as a fraction in [0, 1].
func (p Percent) Ratio() float64 { return float64(p) / 100 }

// String returns the percent formatted with a trailing '%'.
func (p Percent) String() string { return formatFloat(float64(p)) + "%" }

// Error implements the error interface for PercentRangeError.
func (e *PercentRangeError) Error() string {
	return fmt.Sprintf("invalid percent %v: must be in range 0-100", e.Value)
}

// Unwrap returns ErrPercentRange for errors.Is() compatibility.
func (e *PercentRangeError) Unwrap() error { return ErrPercentRange }

// --- Port ---

// NewPort validates 1 <= v <= 65535 and returns it as a Port.
func NewPort(v int) (Port, error) {
	if v < 1 || v > 65535 {
		return 0, &PortRangeError{Value: v}
	}
	return Port(v), nil
}

// MustPort is NewPort that panics on invalid input.
func MustPort(v int) Port { return must(NewPort(v)) }

// TryPort is the comma-ok variant of NewPort.
func TryPort(v int) (Port, bool) { return try(NewPort(v)) }

// Int returns the underlying numeric value.
func (p Port) Int() int { return int(p) }

// String returns the decimal string representation of the Port.
func (p Port) String() string { return strconv.Itoa(int(p)) }

// Error implements the error interface for PortRangeError.
func (e *PortRangeError) Error() string {
	return fmt.Sprintf("invalid port %d: must be in range 1-65535", e.Value)
}

// Unwrap returns ErrPortRange for errors.Is() compatibility.
func (e *PortRangeError) Unwrap() error { return ErrPortRange }

// --- shared constructor plumbing ---

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func try[T any](v T, err error) (T, bool) {
	return v, err == nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
