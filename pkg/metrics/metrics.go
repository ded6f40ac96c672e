package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the service's Prometheus collectors behind one handler.
type Registry struct {
	reg *prometheus.Registry

	CartMutations      *prometheus.CounterVec // labelled by operation: add, update, remove
	CheckoutSessions   prometheus.Counter
	PaymentFailures    prometheus.Counter
	OrdersMaterialized prometheus.Counter
	OrderRevenue       prometheus.Counter // minor currency units
}

// NewRegistry creates and registers all collectors.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecompro_cart_mutations_total",
		Help: "Cart mutations applied, by operation.",
	}, []string{"op"})
	checkoutSessions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecompro_checkout_sessions_total",
		Help: "Payment sessions successfully created.",
	})
	paymentFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecompro_payment_failures_total",
		Help: "Payment gateway calls that failed.",
	})
	ordersMaterialized := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecompro_orders_materialized_total",
		Help: "Orders persisted from completed payments.",
	})
	orderRevenue := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecompro_order_revenue_minor_units_total",
		Help: "Summed order totals in minor currency units.",
	})

	r.MustRegister(cartMutations, checkoutSessions, paymentFailures, ordersMaterialized, orderRevenue)
	return &Registry{
		reg:                r,
		CartMutations:      cartMutations,
		CheckoutSessions:   checkoutSessions,
		PaymentFailures:    paymentFailures,
		OrdersMaterialized: ordersMaterialized,
		OrderRevenue:       orderRevenue,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
