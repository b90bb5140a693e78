package model

import "fmt"

// Budget is a user-configured monthly spending ceiling for one category.
// At most one budget exists per (user, category) pair; updates keep the
// original record identity.
type Budget struct {
	ID           string
	UserID       string
	CategoryID   string
	MonthlyLimit float64
}

// Validate checks the budget for well-formedness before persistence.
func (b *Budget) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("%w: id", ErrMissingField)
	}
	if b.UserID == "" {
		return fmt.Errorf("%w: user id", ErrMissingField)
	}
	if b.CategoryID == "" {
		return fmt.Errorf("%w: category id", ErrMissingField)
	}
	if b.MonthlyLimit < 0 {
		return fmt.Errorf("%w: %.2f", ErrNegativeAmount, b.MonthlyLimit)
	}
	return nil
}
