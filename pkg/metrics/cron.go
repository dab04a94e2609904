package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CronJobMetrics tracks per-job outcomes for the maintenance worker. A nil
// receiver or an unregistered instance records nothing, so callers never
// guard their observe calls.
type CronJobMetrics struct {
	runSeconds *prometheus.HistogramVec
	successes  *prometheus.CounterVec
	failures   *prometheus.CounterVec
}

// NewCronJobMetrics registers the job collectors on reg. A nil registerer
// yields a no-op instance, which tests and dry runs rely on.
func NewCronJobMetrics(reg prometheus.Registerer) *CronJobMetrics {
	if reg == nil {
		return &CronJobMetrics{}
	}
	m := &CronJobMetrics{
		runSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "job_duration_seconds",
			Help:    "Duration of cron jobs in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"job"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "job_success",
			Help: "Successful cron job executions.",
		}, []string{"job"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "job_failure",
			Help: "Failed cron job executions.",
		}, []string{"job"}),
	}
	reg.MustRegister(m.runSeconds, m.successes, m.failures)
	return m
}

func (m *CronJobMetrics) ObserveDuration(job string, elapsed time.Duration) {
	if m == nil || m.runSeconds == nil {
		return
	}
	m.runSeconds.WithLabelValues(jobLabel(job)).Observe(elapsed.Seconds())
}

func (m *CronJobMetrics) IncSuccess(job string) {
	if m == nil || m.successes == nil {
		return
	}
	m.successes.WithLabelValues(jobLabel(job)).Inc()
}

func (m *CronJobMetrics) IncFailure(job string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(jobLabel(job)).Inc()
}

func jobLabel(job string) string {
	if job == "" {
		return "unknown"
	}
	return job
}
