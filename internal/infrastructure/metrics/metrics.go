package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EscrowMetrics bundles every Prometheus series the service exports.
type EscrowMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec
	OpenOrdersCount          prometheus.GaugeVec

	OrdersCompletedTotal       prometheus.CounterVec
	OrdersCompletedAmountTotal prometheus.CounterVec

	OrdersCancelledTotal prometheus.CounterVec
	OrdersRefundedTotal  prometheus.CounterVec

	OrderTransitionsTotal     prometheus.CounterVec
	TransitionConflictsTotal  prometheus.CounterVec
	AutoReleasesTotal         prometheus.CounterVec
	PaymentsExpiredTotal      prometheus.CounterVec

	DisputesOpenedTotal   prometheus.CounterVec
	DisputesResolvedTotal prometheus.CounterVec

	PlatformFeeTotal  prometheus.CounterVec
	SellerPayoutTotal prometheus.CounterVec

	WalletCallDuration      prometheus.HistogramVec
	OrderSettlementDuration prometheus.HistogramVec
	SweepDuration           prometheus.HistogramVec

	OrderErrorsTotal prometheus.CounterVec
}

func NewEscrowMetrics() *EscrowMetrics {
	return &EscrowMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_orders_created_total",
				Help: "Orders created, by store and checkout channel",
			},
			[]string{"store_id", "channel", "currency"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_orders_created_amount_total",
				Help: "Gross amount of created orders",
			},
			[]string{"store_id", "currency"},
		),

		OpenOrdersCount: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "escrow_open_orders_count",
				Help: "Orders currently in a non-terminal status",
			},
			[]string{"store_id"},
		),

		OrdersCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_orders_completed_total",
				Help: "Orders released to the seller",
			},
			[]string{"store_id", "currency"},
		),

		OrdersCompletedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_orders_completed_amount_total",
				Help: "Gross amount of released orders",
			},
			[]string{"store_id", "currency"},
		),

		OrdersCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_orders_cancelled_total",
				Help: "Orders cancelled or rejected before fulfilment",
			},
			[]string{"store_id", "action"},
		),

		OrdersRefundedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_orders_refunded_total",
				Help: "Orders refunded to the buyer after a dispute",
			},
			[]string{"store_id", "currency"},
		),

		OrderTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_order_transitions_total",
				Help: "Applied status transitions",
			},
			[]string{"action", "from_status", "to_status"},
		),

		TransitionConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transition_conflicts_total",
				Help: "Guarded updates lost to a concurrent writer",
			},
			[]string{"action"},
		),

		AutoReleasesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_auto_releases_total",
				Help: "Orders completed by the release sweep",
			},
			[]string{"currency"},
		),

		PaymentsExpiredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_payments_expired_total",
				Help: "Link checkouts cancelled because payment never arrived",
			},
			[]string{"store_id"},
		),

		DisputesOpenedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_disputes_opened_total",
				Help: "Disputes opened, by the role that opened them",
			},
			[]string{"opened_by_role"},
		),

		DisputesResolvedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_disputes_resolved_total",
				Help: "Disputes resolved, by winning side",
			},
			[]string{"winner"},
		),

		PlatformFeeTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_platform_fee_total",
				Help: "Platform fees collected on released orders",
			},
			[]string{"currency"},
		),

		SellerPayoutTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_seller_payout_total",
				Help: "Payouts credited to sellers on released orders",
			},
			[]string{"currency"},
		),

		WalletCallDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "escrow_wallet_call_duration_seconds",
				Help:    "Latency of wallet service calls",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"operation"},
		),

		OrderSettlementDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "escrow_order_settlement_duration_seconds",
				Help:    "Time from order creation to its terminal status",
				Buckets: prometheus.ExponentialBuckets(60, 4, 10),
			},
			[]string{"final_status"},
		),

		SweepDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "escrow_sweep_duration_seconds",
				Help:    "Runtime of the background sweeps",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"sweep"},
		),

		OrderErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_order_errors_total",
				Help: "Failed order operations by error kind",
			},
			[]string{"action", "error_type"},
		),
	}
}

func (m *EscrowMetrics) RecordOrderCreated(storeID, channel, currency string, amount float64) {
	m.OrdersCreatedTotal.WithLabelValues(storeID, channel, currency).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(storeID, currency).Add(amount)
	m.OpenOrdersCount.WithLabelValues(storeID).Inc()
}

func (m *EscrowMetrics) RecordTransition(action, fromStatus, toStatus string) {
	m.OrderTransitionsTotal.WithLabelValues(action, fromStatus, toStatus).Inc()
}

func (m *EscrowMetrics) RecordConflict(action string) {
	m.TransitionConflictsTotal.WithLabelValues(action).Inc()
}

func (m *EscrowMetrics) RecordOrderCompleted(storeID, currency string, amount, fee, payout float64) {
	m.OrdersCompletedTotal.WithLabelValues(storeID, currency).Inc()
	m.OrdersCompletedAmountTotal.WithLabelValues(storeID, currency).Add(amount)
	m.PlatformFeeTotal.WithLabelValues(currency).Add(fee)
	m.SellerPayoutTotal.WithLabelValues(currency).Add(payout)
	m.OpenOrdersCount.WithLabelValues(storeID).Dec()
}

func (m *EscrowMetrics) RecordOrderCancelled(storeID, action string) {
	m.OrdersCancelledTotal.WithLabelValues(storeID, action).Inc()
	m.OpenOrdersCount.WithLabelValues(storeID).Dec()
}

func (m *EscrowMetrics) RecordOrderRefunded(storeID, currency string, amount float64) {
	m.OrdersRefundedTotal.WithLabelValues(storeID, currency).Add(1)
	m.OpenOrdersCount.WithLabelValues(storeID).Dec()
}

func (m *EscrowMetrics) RecordAutoRelease(currency string) {
	m.AutoReleasesTotal.WithLabelValues(currency).Inc()
}

func (m *EscrowMetrics) RecordPaymentExpired(storeID string) {
	m.PaymentsExpiredTotal.WithLabelValues(storeID).Inc()
	m.OpenOrdersCount.WithLabelValues(storeID).Dec()
}

func (m *EscrowMetrics) RecordDisputeOpened(role string) {
	m.DisputesOpenedTotal.WithLabelValues(role).Inc()
}

func (m *EscrowMetrics) RecordDisputeResolved(winner string) {
	m.DisputesResolvedTotal.WithLabelValues(winner).Inc()
}

func (m *EscrowMetrics) RecordWalletCall(operation string, seconds float64) {
	m.WalletCallDuration.WithLabelValues(operation).Observe(seconds)
}

func (m *EscrowMetrics) RecordSettlementDuration(finalStatus string, seconds float64) {
	m.OrderSettlementDuration.WithLabelValues(finalStatus).Observe(seconds)
}

func (m *EscrowMetrics) RecordSweep(sweep string, seconds float64) {
	m.SweepDuration.WithLabelValues(sweep).Observe(seconds)
}

func (m *EscrowMetrics) RecordError(action, errorType string) {
	m.OrderErrorsTotal.WithLabelValues(action, errorType).Inc()
}
