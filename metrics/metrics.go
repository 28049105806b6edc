package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	calls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nftledger",
		Name:      "calls_total",
		Help:      "Contract calls by method and result.",
	}, []string{"method", "result"})

	payouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nftledger",
		Name:      "payouts_total",
		Help:      "Refund payout transfers by state.",
	}, []string{"state"})
)

func ObserveCall(method, result string) {
	calls.WithLabelValues(method, result).Inc()
}

func ObservePayout(state string) {
	payouts.WithLabelValues(state).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
