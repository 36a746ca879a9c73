package errors

import (
	"fmt"
	"strings"
)

// Kind classifies why an import was rejected.
type Kind string

// Import error kinds
const (
	// KindParse means the raw text is not valid for its declared format.
	KindParse Kind = "ParseError"
	// KindSchema means the document parsed but lacks a node the adapter needs.
	KindSchema Kind = "SchemaError"
	// KindValidation means a required field is present structurally but unusable.
	KindValidation Kind = "ValidationError"
	// KindStore means the destination store could not be consulted.
	KindStore Kind = "StoreError"
)

// Synthetic field tags used when no source path applies.
const (
	FieldFormat    = "format"
	FieldCharacter = "character"
	FieldStore     = "store"
)

// ImportError is a field-level import failure. It is returned as data
// alongside a nil result, never raised.
type ImportError struct {
	Kind    Kind   `json:"kind"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface so an ImportError can be wrapped or logged.
func (e ImportError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}

// NewParseError creates a ParseError record
func NewParseError(field, message string) ImportError {
	return ImportError{Kind: KindParse, Field: field, Message: message}
}

// NewSchemaError creates a SchemaError record
func NewSchemaError(field, message string) ImportError {
	return ImportError{Kind: KindSchema, Field: field, Message: message}
}

// NewValidationFieldError creates a ValidationError record
func NewValidationFieldError(field, message string) ImportError {
	return ImportError{Kind: KindValidation, Field: field, Message: message}
}

// NewStoreError creates a StoreError record
func NewStoreError(message string) ImportError {
	return ImportError{Kind: KindStore, Field: FieldStore, Message: message}
}

// ImportErrors is an ordered list of import failures.
type ImportErrors []ImportError

// HasField reports whether any entry targets field.
func (e ImportErrors) HasField(field string) bool {
	for _, ie := range e {
		if ie.Field == field {
			return true
		}
	}
	return false
}

// HasKind reports whether any entry is of kind k.
func (e ImportErrors) HasKind(k Kind) bool {
	for _, ie := range e {
		if ie.Kind == k {
			return true
		}
	}
	return false
}

// Fields returns the field of every entry in order.
func (e ImportErrors) Fields() []string {
	fields := make([]string, len(e))
	for i, ie := range e {
		fields[i] = ie.Field
	}
	return fields
}

// WithPrefix returns a copy whose fields are nested under prefix,
// e.g. "name" under "characters[2]" becomes "characters[2].name".
func (e ImportErrors) WithPrefix(prefix string) ImportErrors {
	if len(e) == 0 {
		return nil
	}
	out := make(ImportErrors, len(e))
	for i, ie := range e {
		ie.Field = prefix + "." + ie.Field
		out[i] = ie
	}
	return out
}

// Error joins every entry; it lets a non-empty list travel as a Go error.
func (e ImportErrors) Error() string {
	parts := make([]string, len(e))
	for i, ie := range e {
		parts[i] = ie.Error()
	}
	return strings.Join(parts, "; ")
}
