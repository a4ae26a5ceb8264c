package metrics

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type SettlementMetrics struct {
	*HostMetrics

	opts metric.MeasurementOption

	quoteCounter      metric.Int64Counter
	bundleCounter     metric.Int64Counter
	chainErrorCounter metric.Int64Counter
	regressionCounter metric.Int64Counter
}

// NewSettlementMetrics initializes quote and bundle status metrics
func NewSettlementMetrics(ctx context.Context, meter metric.Meter, env, serviceID, version string) (*SettlementMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("serviceID", serviceID),
		attribute.String("version", version),
	)

	hostMetrics, err := NewHostMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	quoteCounter, err := meter.Int64Counter(
		"settlement.Quotes",
		metric.WithDescription("Number of resolved quotes by outcome"),
	)
	if err != nil {
		return nil, err
	}
	bundleCounter, err := meter.Int64Counter(
		"settlement.BundleStatuses",
		metric.WithDescription("Number of computed bundle statuses"),
	)
	if err != nil {
		return nil, err
	}
	chainErrorCounter, err := meter.Int64Counter(
		"settlement.ChainQueryFailures",
		metric.WithDescription("Number of failed per-chain queries"),
	)
	if err != nil {
		return nil, err
	}
	regressionCounter, err := meter.Int64Counter(
		"settlement.RegressionsRefused",
		metric.WithDescription("Number of terminal statuses kept over incomplete data"),
	)
	if err != nil {
		return nil, err
	}

	return &SettlementMetrics{
		HostMetrics:       hostMetrics,
		opts:              opts,
		quoteCounter:      quoteCounter,
		bundleCounter:     bundleCounter,
		chainErrorCounter: chainErrorCounter,
		regressionCounter: regressionCounter,
	}, nil
}

func (m *SettlementMetrics) TrackQuote(fulfilled bool) {
	m.quoteCounter.Add(
		context.Background(),
		1,
		m.opts,
		metric.WithAttributes(attribute.Bool("fulfilled", fulfilled)),
	)
}

func (m *SettlementMetrics) TrackBundleStatus(status string) {
	m.bundleCounter.Add(
		context.Background(),
		1,
		m.opts,
		metric.WithAttributes(attribute.String("status", status)),
	)
}

func (m *SettlementMetrics) TrackChainFailure(chainID uint64) {
	m.chainErrorCounter.Add(
		context.Background(),
		1,
		m.opts,
		metric.WithAttributes(attribute.String("chainID", strconv.FormatUint(chainID, 10))),
	)
}

func (m *SettlementMetrics) TrackRegressionRefused() {
	m.regressionCounter.Add(context.Background(), 1, m.opts)
}
