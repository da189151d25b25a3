package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidRatio = errors.New("invalid cloudpak ratio")

// Ratio is a parsed "N:M" product-to-cloudpak ratio. A member's usage counts N/M units of
// the bundle's metric per unit of its own.
type Ratio struct {
	Numerator   decimal.Decimal
	Denominator decimal.Decimal
}

// ParseRatio parses "N:M". Both parts must be non-negative decimals and M must be non-zero.
func ParseRatio(s string) (Ratio, error) {
	numText, denText, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Ratio{}, fmt.Errorf("%w: %q is not of the form N:M", ErrInvalidRatio, s)
	}

	numerator, err := decimal.NewFromString(strings.TrimSpace(numText))
	if err != nil {
		return Ratio{}, fmt.Errorf("%w: numerator of %q: %w", ErrInvalidRatio, s, err)
	}
	denominator, err := decimal.NewFromString(strings.TrimSpace(denText))
	if err != nil {
		return Ratio{}, fmt.Errorf("%w: denominator of %q: %w", ErrInvalidRatio, s, err)
	}
	if numerator.IsNegative() || denominator.IsNegative() {
		return Ratio{}, fmt.Errorf("%w: %q is negative", ErrInvalidRatio, s)
	}
	if denominator.IsZero() {
		return Ratio{}, fmt.Errorf("%w: %q has a zero denominator", ErrInvalidRatio, s)
	}

	return Ratio{Numerator: numerator, Denominator: denominator}, nil
}

// String returns the canonical "N:M" form, so "01:2.0" and "1:2" identify the same member.
func (r Ratio) String() string {
	return r.Numerator.String() + ":" + r.Denominator.String()
}
