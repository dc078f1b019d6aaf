package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"tomato-ordering/order-svc/internal/domain"
	"tomato-ordering/order-svc/internal/metrics"

	"github.com/skip2/go-qrcode"
)

// UPIQRGenerator renders a upi://pay link for the receipt as a PNG.
type UPIQRGenerator struct {
	VPA   string
	Payee string
}

func (g UPIQRGenerator) Link(receipt domain.Receipt) string {
	q := url.Values{}
	q.Set("pa", g.VPA)
	if g.Payee != "" {
		q.Set("pn", g.Payee)
	}
	q.Set("am", fmt.Sprintf("%d", receipt.Amount))
	q.Set("cu", "INR")
	q.Set("tn", fmt.Sprintf("order-%d", receipt.OrderID))
	return "upi://pay?" + q.Encode()
}

func (g UPIQRGenerator) Generate(receipt domain.Receipt) ([]byte, error) {
	return qrcode.Encode(g.Link(receipt), qrcode.Medium, 256)
}

type PaymentService struct {
	qrEncoder     QRGenerator
	notifications *NotificationService
	log           *slog.Logger

	mu      sync.RWMutex
	qrCodes map[int][]byte
}

func NewPaymentService(qr QRGenerator, notifications *NotificationService, log *slog.Logger) *PaymentService {
	return &PaymentService{
		qrEncoder:     qr,
		notifications: notifications,
		log:           log,
		qrCodes:       make(map[int][]byte),
	}
}

// PayBill executes one payment for order. UPI receipts get a QR code when a
// generator is configured; a QR failure does not fail the payment.
func (s *PaymentService) PayBill(ctx context.Context, order *domain.Order) (domain.Receipt, error) {
	receipt, err := order.PayBill()
	if err != nil {
		return domain.Receipt{}, err
	}

	s.log.InfoContext(ctx, receipt.Message,
		slog.Int("order_id", receipt.OrderID),
		slog.String("method", string(receipt.Method)),
		slog.Int("amount", receipt.Amount),
	)
	metrics.Payments.WithLabelValues(string(receipt.Method)).Inc()
	if receipt.Amount > 0 {
		metrics.PaymentAmount.WithLabelValues(string(receipt.Method)).Add(float64(receipt.Amount))
	}

	if receipt.Method == domain.PaymentUPI && s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(receipt); err == nil {
			receipt.QRCode = qr
			s.mu.Lock()
			s.qrCodes[receipt.OrderID] = qr
			s.mu.Unlock()
		} else {
			s.log.WarnContext(ctx, "upi qr code not generated",
				slog.Int("order_id", receipt.OrderID),
				slog.Any("error", err),
			)
		}
	}

	if s.notifications != nil {
		s.notifications.PaymentCompleted(ctx, order, receipt)
	}
	return receipt, nil
}

// QRCode returns the QR of the latest UPI payment for orderID.
func (s *PaymentService) QRCode(orderID int) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	qr, ok := s.qrCodes[orderID]
	return qr, ok
}
