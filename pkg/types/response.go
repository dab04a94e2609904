package types

// SuccessEnvelope is the uniform body for every successful response.
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorEnvelope is the uniform body for every failed response. Errors carries
// either a plain string or a field-keyed map, depending on the failure.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}
