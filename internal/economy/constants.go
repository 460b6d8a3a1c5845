package economy

// ==================== Error Messages ====================

const (
	ErrMsgRefundFailedFmt  = "refund of %.2f failed after inventory error: %w"
	ErrMsgRestoreFailedFmt = "restore of %d sold items failed after credit error: %w"
	ErrMsgOpenFailedFmt    = "failed to open case %q: %w"
	ErrMsgSellFailedFmt    = "failed to sell items: %w"
	ErrMsgNoIndicesFmt     = "%w: no inventory indices given"
)

// ==================== Log Messages ====================

const (
	LogMsgOpenCaseCalled   = "OpenCase called"
	LogMsgCaseOpened       = "Case opened"
	LogMsgSellItemCalled   = "SellItem called"
	LogMsgSellItemsCalled  = "SellItems called"
	LogMsgItemsSold        = "Items sold"
	LogMsgNothingSold      = "No valid indices, nothing sold"
	LogMsgRefundIssued     = "Inventory write failed, case price refunded"
	LogMsgRefundFailed     = "Refund failed, balance is short by the case price"
	LogMsgItemsRestored    = "Credit failed, sold items restored"
	LogMsgRestoreFailed    = "Restore failed, sold items are lost"
	LogMsgInsufficientFund = "Insufficient funds to open case"
)

// Log field keys
const (
	LogFieldCase    = "case"
	LogFieldPrice   = "price"
	LogFieldItem    = "item"
	LogFieldRarity  = "rarity"
	LogFieldBalance = "balance"
	LogFieldIndex   = "index"
	LogFieldIndices = "indices"
	LogFieldCount   = "count"
	LogFieldTotal   = "total"
	LogFieldError   = "error"
)
