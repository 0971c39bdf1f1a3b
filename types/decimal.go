package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalPrecision is the number of significant digits kept by every arithmetic result.
const DecimalPrecision = 28

// extra digits carried by a division before it is rounded to DecimalPrecision
const divisionGuardDigits = 8

// Decimal is an arbitrary precision amount as the gateway reports it (e.g. "1000.5").
// Results of arithmetic are rounded half-up to DecimalPrecision significant digits.
type Decimal decimal.Decimal

var (
	ZeroDecimal    = Decimal(decimal.Zero)
	hundredDecimal = Decimal(decimal.NewFromInt(100))
)

// NewDecimalFromStr creates a new Decimal from a string
func NewDecimalFromStr(str string) (Decimal, error) {
	dec, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return ZeroDecimal, err
	}
	return Decimal(dec), nil
}

// MustDecimal is NewDecimalFromStr that panics, for constants and tests
func MustDecimal(str string) Decimal {
	dec, err := NewDecimalFromStr(str)
	if err != nil {
		panic(err)
	}
	return dec
}

// NewDecimalFromInt creates a new Decimal from an int64
func NewDecimalFromInt(i int64) Decimal {
	return Decimal(decimal.NewFromInt(i))
}

func (d Decimal) inner() decimal.Decimal {
	return decimal.Decimal(d)
}

// roundSignificant rounds half away from zero so that at most DecimalPrecision
// significant digits remain.
func roundSignificant(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	coefficient := new(big.Int).Abs(d.Coefficient())
	digits := int32(len(coefficient.Text(10)))
	if digits <= DecimalPrecision {
		return d
	}
	places := DecimalPrecision - digits - d.Exponent()
	return d.Round(places)
}

// adjustedExponent is the power of ten of the most significant digit
func adjustedExponent(d decimal.Decimal) int32 {
	if d.IsZero() {
		return 0
	}
	coefficient := new(big.Int).Abs(d.Coefficient())
	return d.Exponent() + int32(len(coefficient.Text(10))) - 1
}

func (d Decimal) Add(x Decimal) Decimal {
	return Decimal(roundSignificant(d.inner().Add(x.inner())))
}

func (d Decimal) Sub(x Decimal) Decimal {
	return Decimal(roundSignificant(d.inner().Sub(x.inner())))
}

func (d Decimal) Mul(x Decimal) Decimal {
	return Decimal(roundSignificant(d.inner().Mul(x.inner())))
}

// Div returns ErrDivisionByZero instead of panicking like the underlying library
func (d Decimal) Div(x Decimal) (Decimal, error) {
	if x.IsZero() {
		return ZeroDecimal, ErrDivisionByZero
	}
	// keep DecimalPrecision digits plus guard digits whatever the magnitude of the operands
	scale := DecimalPrecision + divisionGuardDigits - (adjustedExponent(d.inner()) - adjustedExponent(x.inner()))
	if scale < 0 {
		scale = 0
	}
	// truncate, then mark a non-zero remainder one digit below the guard digits so the
	// quotient is rounded only once
	quo, rem := d.inner().QuoRem(x.inner(), scale)
	if !rem.IsZero() {
		sticky := decimal.New(int64(d.Sign()*x.Sign()), -scale-1)
		quo = quo.Add(sticky)
	}
	return Decimal(roundSignificant(quo)), nil
}

func (d Decimal) Cmp(x Decimal) int {
	return d.inner().Cmp(x.inner())
}

func (d Decimal) Equal(x Decimal) bool {
	return d.Cmp(x) == 0
}

func (d Decimal) Sign() int {
	return d.inner().Sign()
}

func (d Decimal) IsZero() bool {
	return d.inner().IsZero()
}

func (d Decimal) IsPositive() bool {
	return d.inner().IsPositive()
}

func (d Decimal) String() string {
	return d.inner().String()
}

// StringFixed renders with exactly places decimal places, rounding half-up
func (d Decimal) StringFixed(places int32) string {
	return d.inner().StringFixed(places)
}

// Percent renders a fraction as a percentage with two decimal places, e.g. 0.05 -> "5.00%"
func (d Decimal) Percent() string {
	return d.Mul(hundredDecimal).StringFixed(2) + "%"
}

// SumDecimals adds every value, starting from zero
func SumDecimals(values ...Decimal) Decimal {
	total := ZeroDecimal
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte("\"" + d.String() + "\""), nil
}

func (d *Decimal) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	dec, err := decimal.NewFromString(str)
	if err != nil {
		return fmt.Errorf("not a valid decimal: %s", p)
	}
	*d = Decimal(dec)
	return nil
}

func (d Decimal) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
