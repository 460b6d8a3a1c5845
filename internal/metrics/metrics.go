package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business Metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase, LabelRarity},
	)

	ItemsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)
)

// Storage Metrics
var (
	IntegrityRecoveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIntegrityRecoveries,
			Help: HelpTextIntegrityRecoveries,
		},
		[]string{LabelFile, LabelSource},
	)

	PersistFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistFailures,
			Help: HelpTextPersistFailures,
		},
		[]string{LabelFile},
	)
)

// Catalog Metrics
var (
	CatalogCasesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogCasesLoaded,
			Help: HelpTextCatalogCasesLoaded,
		},
	)

	CatalogCasesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCasesSkipped,
			Help: HelpTextCatalogCasesSkipped,
		},
	)
)
