package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	PaymentsInitiated       *prometheus.CounterVec
	PaymentInitiationErrors *prometheus.CounterVec
	CallbacksProcessed      *prometheus.CounterVec
	TransactionsSettled     *prometheus.CounterVec
	OrdersCreated           prometheus.Counter
	OrdersPaid              prometheus.Counter

	// Validation Metrics
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		PaymentsInitiated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_payments_initiated_total",
				Help: "Total number of payment initiations accepted by a provider",
			},
			[]string{"method"},
		),
		PaymentInitiationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_payment_initiation_errors_total",
				Help: "Total number of failed payment initiations",
			},
			[]string{"method"},
		),
		CallbacksProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_callbacks_processed_total",
				Help: "Total number of provider callbacks processed",
			},
			[]string{"provider", "outcome"},
		),
		TransactionsSettled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_transactions_settled_total",
				Help: "Total number of transactions reaching a terminal state",
			},
			[]string{"method", "status"},
		),
		OrdersCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_orders_created_total",
				Help: "Total number of orders created from carts",
			},
		),
		OrdersPaid: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_orders_paid_total",
				Help: "Total number of orders marked paid",
			},
		),

		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_validation_errors_total",
				Help: "Total number of request validation errors",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_validation_duration_seconds",
				Help:    "Duration of request validation in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordPaymentInitiated(method string) {
	m.PaymentsInitiated.WithLabelValues(method).Inc()
}

func (m *Metrics) RecordPaymentInitiationError(method string) {
	m.PaymentInitiationErrors.WithLabelValues(method).Inc()
}

func (m *Metrics) RecordCallback(provider, outcome string) {
	m.CallbacksProcessed.WithLabelValues(provider, outcome).Inc()
}

func (m *Metrics) RecordTransactionSettled(method, status string) {
	m.TransactionsSettled.WithLabelValues(method, status).Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(operation string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
