package metrics_test

import (
	"context"
	"testing"

	"github.com/sprintertech/sprinter-settlement/metrics"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/metric/noop"
)

type SettlementMetricsTestSuite struct {
	suite.Suite

	metrics *metrics.SettlementMetrics
}

func TestRunSettlementMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementMetricsTestSuite))
}

func (s *SettlementMetricsTestSuite) SetupTest() {
	m, err := metrics.NewSettlementMetrics(
		context.Background(),
		noop.NewMeterProvider().Meter("test"),
		"test",
		"settlement-1",
		"0.0.1",
	)
	s.Nil(err)
	s.metrics = m
}

func (s *SettlementMetricsTestSuite) Test_Track() {
	s.NotPanics(func() {
		s.metrics.TrackQuote(true)
		s.metrics.TrackQuote(false)
		s.metrics.TrackBundleStatus("COMPLETED")
		s.metrics.TrackChainFailure(8453)
		s.metrics.TrackRegressionRefused()
	})
}
