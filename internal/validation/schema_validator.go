package validation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/owned_item.schema.json
var ownedItemSchema []byte

// OwnedItemSchemaName is the resource name the inventory record schema is
// compiled under.
const OwnedItemSchemaName = "owned_item.schema.json"

// SchemaValidator validates JSON documents against one compiled schema
type SchemaValidator interface {
	ValidateBytes(data []byte) error
}

type validator struct {
	name   string
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles schema under name
func NewSchemaValidator(name string, schema []byte) (SchemaValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &validator{name: name, schema: compiled}, nil
}

// NewOwnedItemValidator returns the validator for inventory records
func NewOwnedItemValidator() (SchemaValidator, error) {
	return NewSchemaValidator(OwnedItemSchemaName, ownedItemSchema)
}

// ValidateBytes validates JSON data bytes against the schema
func (v *validator) ValidateBytes(data []byte) error {
	// Parse JSON data
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	// Validate data against schema
	if err := v.schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var msgs []string
		collectErrors(validationErr, &msgs)
		return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		*msgs = append(*msgs, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	// Get instance location (path to the invalid data)
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	// Get the keyword path to understand what validation failed
	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}

	if keywords != "" {
		return fmt.Sprintf("at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("at %s: validation failed", location)
}
