package types

import (
	"github.com/shopspring/decimal"
)

// FlexDecimal is a decimal that never fails to unmarshal. Malformed or
// missing numeric input is coerced to zero instead of aborting the whole
// request; Degraded records that the coercion happened so callers can log
// it for diagnostics.
type FlexDecimal struct {
	decimal.Decimal
	Degraded bool
}

func NewFlexDecimal(d decimal.Decimal) FlexDecimal {
	return FlexDecimal{Decimal: d}
}

// UnmarshalJSON accepts a JSON number, a quoted numeric string, or junk.
// Junk coerces to zero. Null is a benign zero, same as an absent field.
func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		f.Decimal = decimal.Zero
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		f.Decimal = decimal.Zero
		f.Degraded = true
		return nil
	}
	f.Decimal = d
	return nil
}

func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	return f.Decimal.MarshalJSON()
}

// NonNegative clamps negative values to zero. Tax percentages and unit
// prices are non-negative by convention; the source never enforced the
// bounds so we clamp rather than reject.
func (f FlexDecimal) NonNegative() decimal.Decimal {
	if f.Decimal.IsNegative() {
		return decimal.Zero
	}
	return f.Decimal
}
