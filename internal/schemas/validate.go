// Package schemas provides JSON Schema validation for LLM-produced structured data.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// structuredProfileSchema constrains the shape the resume analyzer must
// return. Keys match the prompt contract; extra keys are tolerated because
// models occasionally add commentary fields.
const structuredProfileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "Name": {"type": "string"},
    "About Me": {"type": "string"},
    "Skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "Work Experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "Company": {"type": "string"},
          "Designation": {"type": "string"},
          "Duration": {"type": "string"},
          "Description": {"type": "string"}
        }
      }
    },
    "Projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "Name": {"type": "string"},
          "Description": {"type": "string"}
        }
      }
    },
    "Education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "Degree": {"type": "string"},
          "Institution": {"type": "string"},
          "Board": {"type": "string"},
          "Description": {"type": "string"}
        }
      }
    }
  },
  "required": ["About Me", "Skills", "Work Experience", "Projects", "Education"]
}`

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateStructuredProfile checks a JSON document against the structured
// profile schema. Returns a *ValidationError describing every violation.
func ValidateStructuredProfile(document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(structuredProfileSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
