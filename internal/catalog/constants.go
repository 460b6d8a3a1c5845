package catalog

// ==================== Case Directory Layout ====================

const (
	MetadataFileName = "case.txt"
	ImageFileName    = "case.png"
	ItemsFileName    = "items.txt"
	SpritesDirName   = "sprites"
	SpriteExtension  = ".png"

	// ItemFieldSeparator splits an items.txt line: name;skin;price;rarity
	ItemFieldSeparator = ";"
	ItemFieldCount     = 4
)

// SpriteCacheSize bounds the memoized sprite lookups.
const SpriteCacheSize = 4096

// CatalogDirPermission is used when the cases root has to be created.
const CatalogDirPermission = 0o755

// ==================== Error Messages ====================

const (
	ErrMsgMissingFile      = "missing required file %s"
	ErrMsgReadFileFailed   = "failed to read %s: %w"
	ErrMsgShortMetadata    = "%s needs a name line and a price line"
	ErrMsgEmptyName        = "case name is empty"
	ErrMsgInvalidPrice     = "invalid price %q"
	ErrMsgValidationFailed = "validation failed: %v"
	ErrMsgDuplicateCase    = "duplicate case name %q"
	ErrMsgReadRootFailed   = "failed to read cases directory: %w"
	ErrMsgCreateRootFailed = "failed to create cases directory: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCaseSkipped     = "Skipping case directory"
	LogMsgItemLineSkipped = "Skipping item line"
	LogMsgCaseLoaded      = "Case loaded"
	LogMsgCatalogLoaded   = "Catalog loaded"
	LogMsgRootCreated     = "Cases directory created, add case folders to it"
)

// Log field keys
const (
	LogFieldDir     = "dir"
	LogFieldCase    = "case"
	LogFieldLine    = "line"
	LogFieldReason  = "reason"
	LogFieldItems   = "items"
	LogFieldLoaded  = "loaded"
	LogFieldSkipped = "skipped"
	LogFieldError   = "error"
)
