package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder registers and exposes Prometheus collectors for the persistence
// layer. A nil *Recorder is valid and records nothing, so services can be
// wired without instrumentation.
type Recorder struct {
	registry         *prometheus.Registry
	loginTotal       *prometheus.CounterVec
	passwordUpgrades prometheus.Counter
	registrations    *prometheus.CounterVec
	storeOpDuration  *prometheus.HistogramVec
}

// NewRecorder registers core collectors on a private registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	loginTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Total authentication attempts by outcome",
	}, []string{"outcome"})

	passwordUpgrades := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auth_password_upgrades_total",
		Help: "Legacy plaintext passwords rehashed during login",
	})

	registrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registrations_total",
		Help: "Completed composite registration flows by role",
	}, []string{"role"})

	storeOpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Duration of store operations in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	registry.MustRegister(loginTotal, passwordUpgrades, registrations, storeOpDuration)

	return &Recorder{
		registry:         registry,
		loginTotal:       loginTotal,
		passwordUpgrades: passwordUpgrades,
		registrations:    registrations,
		storeOpDuration:  storeOpDuration,
	}
}

// Registry exposes the underlying registry for scrape wiring by the caller.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveLogin counts an authentication attempt outcome.
func (r *Recorder) ObserveLogin(outcome string) {
	if r == nil {
		return
	}
	r.loginTotal.WithLabelValues(outcome).Inc()
}

// ObservePasswordUpgrade counts a legacy credential rehash.
func (r *Recorder) ObservePasswordUpgrade() {
	if r == nil {
		return
	}
	r.passwordUpgrades.Inc()
}

// ObserveRegistration counts a completed registration flow.
func (r *Recorder) ObserveRegistration(role string) {
	if r == nil {
		return
	}
	r.registrations.WithLabelValues(role).Inc()
}

// ObserveStoreOp records the duration of a store operation.
func (r *Recorder) ObserveStoreOp(operation string, start time.Time) {
	if r == nil {
		return
	}
	r.storeOpDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
