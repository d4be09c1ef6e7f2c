package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordSignupMovesCounterAndGauge(t *testing.T) {
	before := testutil.ToFloat64(signupCounter.WithLabelValues("Chess Club"))

	RecordSignup("Chess Club", 3)

	after := testutil.ToFloat64(signupCounter.WithLabelValues("Chess Club"))
	require.Equal(t, before+1, after)
	require.Equal(t, 3.0, testutil.ToFloat64(rosterGauge.WithLabelValues("Chess Club")))
}

func TestRecordWithdrawalMovesCounterAndGauge(t *testing.T) {
	before := testutil.ToFloat64(withdrawalCounter.WithLabelValues("Art Club"))

	RecordWithdrawal("Art Club", 0)

	after := testutil.ToFloat64(withdrawalCounter.WithLabelValues("Art Club"))
	require.Equal(t, before+1, after)
	require.Equal(t, 0.0, testutil.ToFloat64(rosterGauge.WithLabelValues("Art Club")))
}

func TestRecordRejectionByReason(t *testing.T) {
	before := testutil.ToFloat64(rejectionCounter.WithLabelValues("activity_full"))

	RecordRejection("activity_full")

	after := testutil.ToFloat64(rejectionCounter.WithLabelValues("activity_full"))
	require.Equal(t, before+1, after)
}

func TestMetricsAreRegistered(t *testing.T) {
	SetRosterSize("Debate Team", 7)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var roster *dto.MetricFamily
	for _, family := range families {
		if family.GetName() == "activities_service_catalog_roster_size" {
			roster = family
		}
	}
	require.NotNil(t, roster, "roster gauge not exported")
	require.Equal(t, dto.MetricType_GAUGE, roster.GetType())

	found := false
	for _, metric := range roster.GetMetric() {
		for _, label := range metric.GetLabel() {
			if label.GetName() == "activity" && label.GetValue() == "Debate Team" {
				found = true
				require.Equal(t, 7.0, metric.GetGauge().GetValue())
			}
		}
	}
	require.True(t, found, "Debate Team sample missing")
}
