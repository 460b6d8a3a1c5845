package ledger

// Log messages
const (
	LogMsgInitialized      = "Balance loaded"
	LogMsgSeeded           = "No balance file found, seeded starting balance"
	LogMsgSeedFailed       = "Failed to persist starting balance"
	LogMsgCredited         = "Balance credited"
	LogMsgDebited          = "Balance debited"
	LogMsgInsufficientFund = "Debit refused, insufficient funds"
	LogMsgPersistFailed    = "Failed to persist balance, mutation rolled back"
)

// Log field keys
const (
	LogFieldAmount  = "amount"
	LogFieldBalance = "balance"
	LogFieldSource  = "source"
	LogFieldCorrupt = "corrupt"
	LogFieldError   = "error"
)
