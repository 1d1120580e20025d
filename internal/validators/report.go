package validators

// FieldError is one failing rule of one field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Report is the outcome of a validation. Errors are ordered by field
// declaration order, then by rule declaration order, and Valid is true
// iff Errors is empty.
type Report struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

func newReport(perField [][]FieldError) Report {
	errs := make([]FieldError, 0)
	for _, fieldErrs := range perField {
		errs = append(errs, fieldErrs...)
	}
	return Report{Valid: len(errs) == 0, Errors: errs}
}

// ErrorsByField groups messages by field. Fields without errors are absent.
func (r Report) ErrorsByField() map[string][]string {
	byField := make(map[string][]string)
	for _, e := range r.Errors {
		byField[e.Field] = append(byField[e.Field], e.Message)
	}
	return byField
}

// FieldOrder returns the names of failing fields in declaration order.
func (r Report) FieldOrder() []string {
	order := make([]string, 0)
	for i, e := range r.Errors {
		if i == 0 || r.Errors[i-1].Field != e.Field {
			order = append(order, e.Field)
		}
	}
	return order
}

// Messages returns every message in report order.
func (r Report) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}
