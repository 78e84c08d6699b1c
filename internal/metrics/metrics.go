package metrics

import (
	"errors"

	"github.com/employee-registry/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics считает результаты операций хранилища сотрудников
type Metrics struct {
	operations *prometheus.CounterVec
	employees  prometheus.Gauge
}

// New регистрирует метрики в reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "employee_store_operations_total",
				Help: "Total number of employee store operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		employees: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "employee_store_records",
				Help: "Number of employee records seen by the last complete list",
			},
		),
	}
}

// Observe учитывает результат операции
func (m *Metrics) Observe(operation string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

// SetRecords обновляет число записей после полного списка
func (m *Metrics) SetRecords(n int) {
	if m == nil {
		return
	}
	m.employees.Set(float64(n))
}

// Outcome переводит ошибку хранилища в метку
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConstraintViolation):
		return "constraint_violation"
	case errors.Is(err, domain.ErrRead):
		return "read_error"
	case errors.Is(err, domain.ErrWrite):
		return "write_error"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return "storage_unavailable"
	default:
		return "error"
	}
}
