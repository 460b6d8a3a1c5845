package inventory

// Log messages
const (
	LogMsgLoaded        = "Inventory loaded"
	LogMsgItemAdded     = "Item added to inventory"
	LogMsgItemsRemoved  = "Items removed from inventory"
	LogMsgItemsRestored = "Items restored to inventory"
	LogMsgIndexIgnored  = "Ignoring out of range inventory index"
	LogMsgPersistFailed = "Failed to persist inventory, mutation rolled back"
)

// Log field keys
const (
	LogFieldItem    = "item"
	LogFieldIndex   = "index"
	LogFieldCount   = "count"
	LogFieldSize    = "size"
	LogFieldSource  = "source"
	LogFieldCorrupt = "corrupt"
	LogFieldError   = "error"
)

// Error messages
const (
	ErrMsgInvalidRecord = "record would not survive a reload"
)
