package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// MaxInputDigits bounds the integer part of an amount typed by the operator.
	MaxInputDigits = 18
	// MaxStoredDigits bounds the integer part of a balance read from the accounts file.
	MaxStoredDigits = 36
	// MaxScale bounds the number of fractional digits.
	MaxScale = 10
)

var ErrAmountOutOfRange = errors.New("amount out of range")

// ParseAmount parses s as a decimal with at most maxIntegerDigits digits before
// the point and MaxScale after it. Exponent notation is accepted only while
// the value stays inside those bounds, so "1e50000000" is rejected before any
// arithmetic expands it.
func ParseAmount(s string, maxIntegerDigits int) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsZero() {
		return decimal.Zero, nil
	}

	exp := amount.Exponent()
	if exp < -MaxScale {
		return decimal.Zero, fmt.Errorf("%w: more than %d decimal places", ErrAmountOutOfRange, MaxScale)
	}
	if int64(amount.NumDigits())+int64(exp) > int64(maxIntegerDigits) {
		return decimal.Zero, fmt.Errorf("%w: more than %d integer digits", ErrAmountOutOfRange, maxIntegerDigits)
	}
	return amount, nil
}
