// Package model defines the core record types for the expense tracker.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PaymentMethod identifies how an expense was paid.
type PaymentMethod string

// Supported payment methods.
const (
	PaymentUPI    PaymentMethod = "UPI"
	PaymentWallet PaymentMethod = "Wallet"
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
)

// PaymentMethods lists all supported payment methods.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentUPI, PaymentWallet, PaymentCash, PaymentCard}
}

// Valid reports whether the payment method is one of the supported values.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentUPI, PaymentWallet, PaymentCash, PaymentCard:
		return true
	}
	return false
}

// ParsePaymentMethod parses a payment method case-insensitively.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range PaymentMethods() {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
}

// Validation errors.
var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrNegativeAmount       = errors.New("amount cannot be negative")
	ErrInvalidDate          = errors.New("invalid date")
	ErrMissingField         = errors.New("missing required field")
)

// Expense is a single recorded spending transaction. Date is a calendar
// date in YYYY-MM-DD form; CreatedAt records insertion time and drives
// the "recent expenses" ordering.
type Expense struct {
	CreatedAt     time.Time
	ID            string
	UserID        string
	Date          string
	PaymentMethod PaymentMethod
	CategoryID    string
	Note          string
	Amount        float64
}

// Validate checks the expense for well-formedness before persistence.
// Referential integrity of CategoryID is deliberately not enforced here.
func (e *Expense) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: id", ErrMissingField)
	}
	if e.UserID == "" {
		return fmt.Errorf("%w: user id", ErrMissingField)
	}
	if e.CategoryID == "" {
		return fmt.Errorf("%w: category id", ErrMissingField)
	}
	if e.Amount < 0 {
		return fmt.Errorf("%w: %.2f", ErrNegativeAmount, e.Amount)
	}
	if !ValidDate(e.Date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
	}
	if !e.PaymentMethod.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, e.PaymentMethod)
	}
	return nil
}
