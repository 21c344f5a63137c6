package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceLimit is the advisory max price a user may set. The zero value means "no limit".
//
// It never blocks a state transition; it only flags choices whose cumulative price would exceed it.
type PriceLimit struct {
	amount  PriceFloat64
	enabled bool
}

// NoPriceLimit returns the disabled limit.
func NoPriceLimit() PriceLimit {
	return PriceLimit{}
}

// PriceLimitOf returns a limit of the given amount.
func PriceLimitOf(amount PriceFloat64) PriceLimit {
	return PriceLimit{amount: amount, enabled: true}
}

// Amount returns the limit and whether it is set.
func (l PriceLimit) Amount() (PriceFloat64, bool) {
	return l.amount, l.enabled
}

// IsSet reports whether a limit is configured.
func (l PriceLimit) IsSet() bool {
	return l.enabled
}

// Exceeded reports whether total is above the limit.
func (l PriceLimit) Exceeded(total PriceFloat64) bool {
	return l.enabled && total > l.amount
}

// CheckPrice returns an advisory *ConstraintViolation when total is above the limit, otherwise nil.
func (l PriceLimit) CheckPrice(total PriceFloat64) error {
	if !l.Exceeded(total) {
		return nil
	}

	p := message.NewPrinter(language.English)

	return &ConstraintViolation{
		Code:   ViolationMaxPrice,
		Reason: p.Sprintf("price $%v exceeds the max price of $%v", total, l.amount),
	}
}
