package validation

import "errors"

// ErrNilTranslator reports contract misuse: evaluating a contract without a
// translate function is a programming error, not a recoverable input failure.
var ErrNilTranslator = errors.New("validation: nil translator")

// FieldError is a single field-scoped validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field-scoped validation failures. It is the only error type
// returned for rejected input; everything else signals contract misuse.
type Errors struct {
	Fields []FieldError `json:"errors"`
}

func (e *Errors) Error() string { return "validation failed" }

func (e *Errors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *Errors) Empty() bool { return len(e.Fields) == 0 }

func (e *Errors) Has(field string) bool {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e *Errors) Messages(field string) []string {
	var out []string
	for _, fe := range e.Fields {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}

// AsErrors unwraps err into *Errors when it is a validation failure.
func AsErrors(err error) *Errors {
	var v *Errors
	if errors.As(err, &v) {
		return v
	}
	return nil
}
