package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Business metric names
const (
	MetricNameCasesOpened = "cases_opened_total"
	MetricNameItemsSold   = "items_sold_total"
	MetricNameMoneyEarned = "money_earned_total"
	MetricNameMoneySpent  = "money_spent_total"
)

// Storage metric names
const (
	MetricNameIntegrityRecoveries = "storage_integrity_recoveries_total"
	MetricNamePersistFailures     = "storage_persist_failures_total"
)

// Catalog metric names
const (
	MetricNameCatalogCasesLoaded  = "catalog_cases_loaded"
	MetricNameCatalogCasesSkipped = "catalog_cases_skipped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextCasesOpened         = "Total number of cases opened, by case and drawn rarity"
	HelpTextItemsSold           = "Total number of inventory items sold"
	HelpTextMoneyEarned         = "Total money credited from selling items"
	HelpTextMoneySpent          = "Total money debited for opening cases"
	HelpTextIntegrityRecoveries = "Loads that failed primary verification, by file and the source used instead"
	HelpTextPersistFailures     = "Saves that failed to reach disk, by file"
	HelpTextCatalogCasesLoaded  = "Number of cases in the most recently loaded catalog"
	HelpTextCatalogCasesSkipped = "Total number of case directories rejected while loading the catalog"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelCase   = "case"
	LabelRarity = "rarity"
	LabelFile   = "file"
	LabelSource = "source"
)
