// util/validation_util.go

package util

import (
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
)

// Messages reported back to the selector form
const (
	MsgTestSuiteRequired   = "Test suite is required"
	MsgNameRequired        = "Name is required!"
	MsgNameAlreadyExists   = "Name already exist!"
	MsgDescriptionRequired = "Description is required!"
)

// FieldError is one inline form error
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors blocks a form submission; it is not a failure of the service
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() error {
	return metacat_errors.ErrTestSuiteValidation
}

// Message returns the message reported for field, or ""
func (v ValidationErrors) Message(field string) string {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// SelectionForm is what the selector validates at submission
type SelectionForm struct {
	IsNewTestSuite bool   `json:"isNewTestSuite"`
	TestSuiteID    string `json:"testSuiteId" validate:"required_if=IsNewTestSuite false"`
	TestSuiteName  string `json:"testSuiteName" validate:"required_if=IsNewTestSuite true"`
	Description    string `json:"description" validate:"required_if=IsNewTestSuite true"`

	// loaded suites, keyed by id and by name
	KnownIDs   map[string]struct{} `json:"-" validate:"-"`
	KnownNames map[string]struct{} `json:"-" validate:"-"`
}

// messages by field then tag
var selectionMessages = map[string]map[string]string{
	"testSuiteId": {
		"required_if": MsgTestSuiteRequired,
		"known":       MsgTestSuiteRequired,
	},
	"testSuiteName": {
		"required_if": MsgNameRequired,
		"unique":      MsgNameAlreadyExists,
	},
	"description": {
		"required_if": MsgDescriptionRequired,
	},
}

type ValidationUtil struct {
	validate  *validator.Validate
	textOnly  *bluemonday.Policy
}

func NewValidationUtil() *ValidationUtil {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterStructValidation(validateSelectionForm, SelectionForm{})

	return &ValidationUtil{
		validate:  validate,
		textOnly:  bluemonday.StrictPolicy(),
	}
}

func validateSelectionForm(sl validator.StructLevel) {
	form := sl.Current().Interface().(SelectionForm)

	if form.IsNewTestSuite {
		// Case-sensitive, matching the catalog's own name comparison
		if form.TestSuiteName != "" {
			if _, taken := form.KnownNames[form.TestSuiteName]; taken {
				sl.ReportError(form.TestSuiteName, "testSuiteName", "TestSuiteName", "unique", "")
			}
		}
		return
	}

	if form.TestSuiteID != "" {
		if _, ok := form.KnownIDs[form.TestSuiteID]; !ok {
			sl.ReportError(form.TestSuiteID, "testSuiteId", "TestSuiteID", "known", "")
		}
	}
}

// ValidateSelection returns ValidationErrors when the form must not be submitted
func (v *ValidationUtil) ValidateSelection(form SelectionForm) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(ValidationErrors, 0, len(verrs))
	seen := make(map[string]bool)
	for _, fe := range verrs {
		field := fe.Field()
		// one message per field, first rule wins
		if seen[field] {
			continue
		}
		seen[field] = true
		out = append(out, FieldError{Field: field, Message: selectionMessages[field][fe.Tag()]})
	}
	return out
}

// NormalizeDescription trims rich-text input and returns it as entered.
// Input without visible text (whitespace, empty tags, script or style only) is reported as empty.
func (v *ValidationUtil) NormalizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	text := html.UnescapeString(v.textOnly.Sanitize(trimmed))
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return trimmed
}
