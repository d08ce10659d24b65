package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wagersPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bolao_wagers_placed_total",
			Help: "Total wager placement attempts by result",
		},
		[]string{"result"},
	)

	poolsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bolao_pools_settled_total",
			Help: "Total pool settlement attempts by result",
		},
		[]string{"result"},
	)

	settlementWinners = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bolao_settlement_winners_total",
			Help: "Total winning wagers paid out across settlements",
		},
	)

	settlementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bolao_settlement_duration_ms",
			Help:    "Pool settlement duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
	)

	annulments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bolao_wager_annulments_total",
			Help: "Total wager annulment attempts by result",
		},
		[]string{"result"},
	)

	fundsOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bolao_funds_operations_total",
			Help: "Deposit/withdrawal lifecycle operations by op and result",
		},
		[]string{"op", "result"},
	)
)

func RecordWagerPlaced(result string) {
	wagersPlaced.WithLabelValues(result).Inc()
}

// RecordSettlement records one settlement attempt. winners only counts on
// success.
func RecordSettlement(result string, winners int, started time.Time) {
	poolsSettled.WithLabelValues(result).Inc()
	if result == "success" {
		settlementWinners.Add(float64(winners))
	}
	settlementDuration.Observe(float64(time.Since(started).Milliseconds()))
}

func RecordAnnulment(result string) {
	annulments.WithLabelValues(result).Inc()
}

func RecordFundsOp(op, result string) {
	fundsOps.WithLabelValues(op, result).Inc()
}
