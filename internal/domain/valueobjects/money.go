package valueobjects

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Money is a non-negative, finite monetary amount.
//
// All cost fields of a work order are Money values. Arithmetic never mutates the
// receiver and every result is re-validated.
type Money struct {
	amount decimal.Decimal
}

// NewMoney builds a Money from a float, rejecting negative and non-finite values.
func NewMoney(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("%w: %v is not finite", ErrInvalidAmount, value)
	}
	return NewMoneyFromDecimal(decimal.NewFromFloat(value))
}

func NewMoneyFromDecimal(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, value.String())
	}
	return Money{amount: value}, nil
}

// MustMoney is NewMoney for literals known to be valid. It panics otherwise.
func MustMoney(value float64) Money {
	m, err := NewMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract fails with ErrInvalidAmount when the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	return NewMoneyFromDecimal(m.amount.Sub(other.amount))
}

func (m Money) Multiply(factor float64) (Money, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Money{}, fmt.Errorf("%w: factor %v is not finite", ErrInvalidAmount, factor)
	}
	return NewMoneyFromDecimal(m.amount.Mul(decimal.NewFromFloat(factor)))
}

// MultiplyQuantity multiplies by an item count; counts below zero are rejected.
func (m Money) MultiplyQuantity(quantity int) (Money, error) {
	return NewMoneyFromDecimal(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsGreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) IsLessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// SumMoney adds up a list of amounts, returning zero for an empty list.
func SumMoney(values ...Money) Money {
	total := ZeroMoney()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
