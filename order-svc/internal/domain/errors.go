package domain

import "errors"

var (
	ErrMissingPaymentMethod = errors.New("no payment method set on order")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrInvalidAmount        = errors.New("amount must not be negative")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrUnknownOrderType     = errors.New("unknown order type")
)
