package domain

import (
	"fmt"
	"strings"
)

// PaymentMethod is the closed set of ways an order can be paid. The zero
// value means no method has been chosen.
type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "UPI"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentNetBanking PaymentMethod = "NET_BANKING"
)

const CurrencySymbol = "₹"

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UPI":
		return PaymentUPI, nil
	case "CREDIT_CARD", "CREDITCARD", "CREDIT CARD":
		return PaymentCreditCard, nil
	case "NET_BANKING", "NETBANKING":
		return PaymentNetBanking, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
}

// DisplayName is the label used in payment reports.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentUPI:
		return "UPI"
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentNetBanking:
		return "NetBanking"
	}
	return string(m)
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentUPI, PaymentCreditCard, PaymentNetBanking:
		return true
	}
	return false
}

// Pay settles amount through m. The amount is not validated; zero and
// negative amounts are reported like any other.
func (m PaymentMethod) Pay(amount int) (Receipt, error) {
	if !m.Valid() {
		return Receipt{}, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, string(m))
	}
	return Receipt{
		Method:  m,
		Amount:  amount,
		Message: fmt.Sprintf("Paid %s%d using %s", CurrencySymbol, amount, m.DisplayName()),
	}, nil
}

type Receipt struct {
	OrderID int           `json:"order_id"`
	Method  PaymentMethod `json:"method"`
	Amount  int           `json:"amount"`
	Message string        `json:"message"`
	QRCode  []byte        `json:"-"`
}
