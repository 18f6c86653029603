// Package payment computes cash change for tab settlement. It is pure: the
// close transition composes it, it never talks to the tab repository itself.
package payment

import (
	"fmt"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

// ComputeChange validates the tendered amount against the tab total and
// returns the change due. Amounts are whole currency units; an exact tender
// yields zero change.
func ComputeChange(totalAmount, tenderedAmount int64) (int64, error) {
	if totalAmount < 0 {
		return 0, fmt.Errorf("%w: total amount must not be negative", domain.ErrValidation)
	}
	if tenderedAmount < totalAmount {
		return 0, fmt.Errorf("%w: tendered %d is less than total %d", domain.ErrValidation, tenderedAmount, totalAmount)
	}
	return tenderedAmount - totalAmount, nil
}
