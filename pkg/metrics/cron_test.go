package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestCronJobMetricsRecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCronJobMetrics(reg)

	m.ObserveDuration("cart-prune", 250*time.Millisecond)
	m.IncSuccess("cart-prune")
	m.IncFailure("cart-prune")
	m.IncSuccess("") // recorded under the "unknown" label

	families, err := reg.Gather()
	require.NoError(t, err)

	require.Equal(t, float64(1), counterValue(t, families, "job_success", "cart-prune"))
	require.Equal(t, float64(1), counterValue(t, families, "job_failure", "cart-prune"))
	require.Equal(t, float64(1), counterValue(t, families, "job_success", "unknown"))

	histogram := jobMetric(t, families, "job_duration_seconds", "cart-prune").GetHistogram()
	require.NotNil(t, histogram)
	require.InDelta(t, 0.25, histogram.GetSampleSum(), 0.001)
}

func TestCronJobMetricsNilSafe(t *testing.T) {
	var m *CronJobMetrics
	m.ObserveDuration("cart-prune", time.Second)
	m.IncSuccess("cart-prune")
	m.IncFailure("cart-prune")

	noop := NewCronJobMetrics(nil)
	noop.IncSuccess("cart-prune")
}

func counterValue(t *testing.T, families []*dto.MetricFamily, name, job string) float64 {
	t.Helper()
	return jobMetric(t, families, name, job).GetCounter().GetValue()
}

func jobMetric(t *testing.T, families []*dto.MetricFamily, name, job string) *dto.Metric {
	t.Helper()
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "job" && label.GetValue() == job {
					return metric
				}
			}
		}
	}
	t.Fatalf("metric %s{job=%q} not found", name, job)
	return nil
}
