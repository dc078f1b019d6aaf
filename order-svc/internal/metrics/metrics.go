package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tomato_orders_created_total",
			Help: "Orders built by a factory, by order type",
		},
		[]string{"type"},
	)

	Payments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tomato_payments_total",
			Help: "Payments executed, by method",
		},
		[]string{"method"},
	)

	PaymentAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tomato_payment_amount_total",
			Help: "Sum of paid amounts, by method",
		},
		[]string{"method"},
	)

	NotificationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tomato_notifications_failed_total",
			Help: "Notifications a sink failed to deliver",
		},
		[]string{"sink"},
	)
)
