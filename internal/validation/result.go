package validation

// FieldError is one field-level failure. Field keys and messages are
// the registry's long-standing contract with the frontend, which maps
// them onto form controls and displays the messages verbatim.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result accumulates field errors in the order the checks ran.
// An empty Result means the input is valid.
type Result struct {
	errs []FieldError
}

func (r *Result) Add(field, message string) {
	r.errs = append(r.errs, FieldError{Field: field, Message: message})
}

func (r *Result) Valid() bool {
	return len(r.errs) == 0
}

func (r *Result) Errors() []FieldError {
	return r.errs
}

// Has reports whether an error for the given field was recorded.
func (r *Result) Has(field string) bool {
	for _, e := range r.errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
