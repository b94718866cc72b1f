// Package metrics expone contadores Prometheus de importaciones CSV y envíos de pedidos.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/order"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
)

var (
	_ inventory.ImportObserver = (*Metrics)(nil)
	_ order.Observer           = (*Metrics)(nil)
)

// Metrics colectores de la aplicación sobre un registry propio.
type Metrics struct {
	registry      *prometheus.Registry
	imports       *prometheus.CounterVec
	importRows    prometheus.Counter
	importUpserts *prometheus.CounterVec
	orderMails    *prometheus.CounterVec
	orderLines    prometheus.Counter
}

// New registra los colectores. service se añade como etiqueta constante.
func New(service string) *Metrics {
	constLabels := prometheus.Labels{"service": service}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "warehouse_csv_imports_total",
			Help:        "CSV imports by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		importRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "warehouse_csv_import_rows_total",
			Help:        "Rows applied by successful CSV imports.",
			ConstLabels: constLabels,
		}),
		importUpserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "warehouse_csv_import_upserts_total",
			Help:        "Articles and warehouse rows created or updated by CSV imports.",
			ConstLabels: constLabels,
		}, []string{"entity", "action"}),
		orderMails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "warehouse_order_mails_total",
			Help:        "Low-stock order mails by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		orderLines: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "warehouse_order_lines_total",
			Help:        "Articles included in sent order mails.",
			ConstLabels: constLabels,
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.imports, m.importRows, m.importUpserts, m.orderMails, m.orderLines,
	)
	return m
}

// ObserveImport implementa inventory.ImportObserver.
func (m *Metrics) ObserveImport(res *inventory.ImportResult, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCSV), errors.Is(err, domain.ErrInvalidFormat):
		m.imports.WithLabelValues("rejected").Inc()
		return
	case err != nil:
		m.imports.WithLabelValues("error").Inc()
		return
	}
	m.imports.WithLabelValues("ok").Inc()
	m.importRows.Add(float64(res.Rows))
	m.importUpserts.WithLabelValues("article", "created").Add(float64(res.ArticlesCreated))
	m.importUpserts.WithLabelValues("article", "updated").Add(float64(res.ArticlesUpdated))
	m.importUpserts.WithLabelValues("warehouse", "created").Add(float64(res.WarehousesCreated))
	m.importUpserts.WithLabelValues("warehouse", "updated").Add(float64(res.WarehousesUpdated))
}

// ObserveOrderMail implementa order.Observer.
func (m *Metrics) ObserveOrderMail(lines int, err error) {
	switch {
	case errors.Is(err, domain.ErrNoArticlesForOrder):
		m.orderMails.WithLabelValues("no_articles").Inc()
	case err != nil:
		m.orderMails.WithLabelValues("error").Inc()
	default:
		m.orderMails.WithLabelValues("sent").Inc()
		m.orderLines.Add(float64(lines))
	}
}

// Handler endpoint de exposición para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
