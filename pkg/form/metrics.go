package form

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-authform/pkg/model"
)

// Submit outcome label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeBlocked  = "blocked"
	OutcomeRejected = "rejected"
	OutcomeInFlight = "in_flight"
)

// Metrics holds the controller counters. A nil *Metrics records nothing.
type Metrics struct {
	submits     *prometheus.CounterVec
	fieldErrors *prometheus.CounterVec
}

// NewMetrics registers the counters on reg. Registering twice on the same
// registry reuses the existing collectors.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	submits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "authform",
		Name:      "submit_total",
		Help:      "Form submit attempts by outcome.",
	}, []string{"form", "outcome"})
	fieldErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "authform",
		Name:      "field_errors_total",
		Help:      "Validation failures recorded per field.",
	}, []string{"form", "field"})

	var err error
	if submits, err = registerCounterVec(reg, submits); err != nil {
		return nil, err
	}
	if fieldErrors, err = registerCounterVec(reg, fieldErrors); err != nil {
		return nil, err
	}
	return &Metrics{submits: submits, fieldErrors: fieldErrors}, nil
}

// SubmitCounter exposes the submit counter for inspection.
func (m *Metrics) SubmitCounter() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.submits
}

// FieldErrorCounter exposes the field error counter for inspection.
func (m *Metrics) FieldErrorCounter() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.fieldErrors
}

func (m *Metrics) observeSubmit(form, outcome string) {
	if m == nil {
		return
	}
	m.submits.WithLabelValues(form, outcome).Inc()
}

func (m *Metrics) observeFieldError(form string, field model.FieldName) {
	if m == nil {
		return
	}
	m.fieldErrors.WithLabelValues(form, field.String()).Inc()
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if reg == nil {
		return vec, nil
	}
	if err := reg.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return vec, nil
}
