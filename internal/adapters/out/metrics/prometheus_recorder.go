// Package metrics exports sorting outcomes as Prometheus counters.
package metrics

import (
	"context"
	"fmt"

	"sorting/internal/core/domain/model/parcel"
	"sorting/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements ports.SortRecorder with two counter vectors:
//
//	sorting_packages_sorted_total{result="standard|special|rejected"}
//	sorting_package_errors_total{field="width|height|length|mass"}
type PrometheusRecorder struct {
	sortedTotal *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
}

// NewPrometheusRecorder creates the counters and registers them with registerer.
// Every label value is initialised at zero so dashboards see the full series set.
func NewPrometheusRecorder(registerer prometheus.Registerer) (*PrometheusRecorder, error) {
	r := &PrometheusRecorder{
		sortedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sorting",
				Name:      "packages_sorted_total",
				Help:      "Total number of sorted packages by result",
			},
			[]string{"result"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sorting",
				Name:      "package_errors_total",
				Help:      "Total number of sort requests rejected by validation, by first invalid field",
			},
			[]string{"field"},
		),
	}

	for _, c := range []prometheus.Collector{r.sortedTotal, r.errorsTotal} {
		if err := registerer.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register sorting metrics: %w", err)
		}
	}

	for _, result := range parcel.AllSortResults() {
		r.sortedTotal.WithLabelValues(result.String())
	}
	for _, field := range []services.Field{
		services.FieldWidth, services.FieldHeight, services.FieldLength, services.FieldMass,
	} {
		r.errorsTotal.WithLabelValues(field.String())
	}

	return r, nil
}

// RecordSorted increments the counter of result.
func (r *PrometheusRecorder) RecordSorted(_ context.Context, result parcel.SortResult) {
	r.sortedTotal.WithLabelValues(result.String()).Inc()
}

// RecordInvalidInput increments the error counter of field.
func (r *PrometheusRecorder) RecordInvalidInput(_ context.Context, field services.Field) {
	r.errorsTotal.WithLabelValues(field.String()).Inc()
}
