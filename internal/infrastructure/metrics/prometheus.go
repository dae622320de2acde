// Package metrics expone las métricas del flujo de pesaje con Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/application/weighing"
)

var _ weighing.Recorder = (*Recorder)(nil)

// Recorder implementa weighing.Recorder con un registry propio.
type Recorder struct {
	registry   *prometheus.Registry
	ingestions *prometheus.CounterVec
	netWeight  prometheus.Histogram
	lowStock   prometheus.Counter
}

// NewRecorder registra las métricas del pesaje más las de runtime Go y proceso.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		ingestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weighing_ingestions_total",
			Help: "Lecturas de báscula procesadas por resultado.",
		}, []string{"result"}),
		netWeight: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "weighing_net_weight",
			Help:    "Peso neto de los pesajes completados.",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8), // 10 .. ~164k
		}),
		lowStock: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_low_stock_alerts_total",
			Help: "Alertas de stock bajo emitidas.",
		}),
	}
	reg.MustRegister(
		r.ingestions, r.netWeight, r.lowStock,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) IngestionResult(result string) {
	r.ingestions.WithLabelValues(result).Inc()
}

func (r *Recorder) NetWeight(net decimal.Decimal) {
	v, _ := net.Float64()
	r.netWeight.Observe(v)
}

func (r *Recorder) LowStockAlert() {
	r.lowStock.Inc()
}

// Handler handler HTTP de /metrics sobre el registry propio.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer acceso al registry para tests.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }
