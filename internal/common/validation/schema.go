// Package validation checks job variables against the JSON schemas registered
// for each activity.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "rental-workers/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError is one schema violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Validate checks document (any JSON-compatible Go value) against schema.
func Validate(schema map[string]interface{}, document interface{}) (*ValidationResult, error) {
	return validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(document))
}

// ValidateJSON checks a raw JSON document against schema and returns a
// VALIDATION_FAILED StandardError listing every violation.
func ValidateJSON(schema map[string]interface{}, rawJSON string) error {
	result, err := validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewStringLoader(rawJSON))
	if err != nil {
		return apperrors.NewParseError(err)
	}
	if result.Valid {
		return nil
	}

	stdErr := apperrors.NewValidationError(result.Errors[0].Field,
		fmt.Sprintf("Validation errors: %v", result.GetErrorMessages()))
	return stdErr
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader) (*ValidationResult, error) {
	res, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: res.Valid()}
	for _, desc := range res.Errors() {
		field := desc.Field()
		if field == "(root)" {
			if missing, ok := desc.Details()["property"].(string); ok {
				field = missing
			}
		}
		out.Errors = append(out.Errors, ValidationError{
			Field:   field,
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out, nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			return true
		}
	}
	return false
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
	urlPattern   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
)

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone validates basic phone number format
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateURL validates URL format
func ValidateURL(url string) bool {
	return urlPattern.MatchString(url)
}
