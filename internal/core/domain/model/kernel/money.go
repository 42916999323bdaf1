package kernel

import (
	"errors"

	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney")

// maxMoney is the largest amount that fits NUMERIC(10,2).
var maxMoney = decimal.RequireFromString("99999999.99")

// Money is a non-negative amount with at most two fractional digits.
// It is used for product prices, frozen line prices and order totals.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates amount and wraps it.
//
// Returns:
//   - ValueIsOutOfRangeError if amount is negative or too large for storage
//   - ValueIsInvalidError if amount has more than two fractional digits
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() || amount.GreaterThan(maxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", maxMoney.String())
	}
	if !amount.Equal(amount.Round(2)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", errors.New("at most two fractional digits are allowed"))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "3.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MoneyFromFloat converts a JSON number. The float is read through its shortest
// decimal representation, so 3.5 becomes exactly 3.50.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul returns m * quantity. quantity is expected to be positive.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 is used only at the JSON boundary.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
