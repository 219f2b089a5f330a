package dto

// Envelope is the uniform wrapper around every successful response payload.
type Envelope struct {
	Result any `json:"result"`
}

// Wrap builds the response envelope.
func Wrap(payload any) Envelope {
	return Envelope{Result: payload}
}

// GenericResponse acknowledges a write without echoing the created resource.
type GenericResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of 4xx/5xx responses. Fields carries the
// aggregated per-field failures on validation errors; Code is the stable
// internal code on 500-class responses.
type ErrorResponse struct {
	Error  string         `json:"error"`
	Code   int            `json:"code,omitempty"`
	Fields []FieldFailure `json:"fields,omitempty"`
}

// FieldFailure mirrors validation.FieldError for the wire.
type FieldFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
