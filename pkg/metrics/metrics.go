package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coinSpendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lw_coin_spends_total",
			Help: "Total number of spend attempts labeled by feature and result",
		},
		[]string{"feature", "result"},
	)
	coinsSpentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lw_coins_spent_total",
			Help: "Total coins debited labeled by source bucket",
		},
		[]string{"source"},
	)
	coinsCreditedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lw_coins_credited_total",
			Help: "Total coins credited labeled by transaction type",
		},
		[]string{"type"},
	)
	purchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lw_purchases_total",
			Help: "Total number of purchase crediting attempts labeled by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)
	monthlyRefillsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lw_monthly_refills_total",
			Help: "Total number of monthly allowance rollovers persisted",
		},
	)
	goalRecomputesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lw_goal_recomputes_total",
			Help: "Total number of daily goal recomputations labeled by completion",
		},
		[]string{"completed"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lw_ai_request_duration_seconds",
			Help:    "Duration of AI provider calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"feature", "status"},
	)
	aiFailuresAfterChargeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lw_ai_failures_after_charge_total",
			Help: "Total number of AI calls that failed after the spend was committed",
		},
		[]string{"feature"},
	)
	paymentsReconciledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lw_payments_reconciled_total",
			Help: "Total number of pending payments polled from the provider labeled by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordSpend counts one spend decision.
func RecordSpend(feature string, allowed bool) {
	if feature == "" {
		feature = "unknown"
	}
	coinSpendsTotal.WithLabelValues(feature, resultLabel(allowed)).Inc()
}

func AddCoinsSpent(source string, amount float64) {
	if amount <= 0 {
		return
	}
	coinsSpentTotal.WithLabelValues(source).Add(amount)
}

func AddCoinsCredited(txType string, amount float64) {
	if amount <= 0 {
		return
	}
	coinsCreditedTotal.WithLabelValues(txType).Add(amount)
}

func RecordPurchase(channel, outcome string) {
	purchasesTotal.WithLabelValues(channel, outcome).Inc()
}

func RecordMonthlyRefill() {
	monthlyRefillsTotal.Inc()
}

func RecordGoalRecompute(completed bool) {
	label := "false"
	if completed {
		label = "true"
	}
	goalRecomputesTotal.WithLabelValues(label).Inc()
}

// ObserveAIRequest records the latency of one provider call.
func ObserveAIRequest(feature, status string, seconds float64) {
	aiRequestDuration.WithLabelValues(feature, status).Observe(seconds)
}

// RecordAIFailureAfterCharge counts provider failures that were not refunded.
func RecordAIFailureAfterCharge(feature string) {
	aiFailuresAfterChargeTotal.WithLabelValues(feature).Inc()
}

func RecordReconcile(outcome string) {
	paymentsReconciledTotal.WithLabelValues(outcome).Inc()
}

func resultLabel(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "rejected"
}
