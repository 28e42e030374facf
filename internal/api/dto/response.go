package dto

// Machine-readable error kinds. Clients branch on Code, not on the
// human-readable message.
const (
	CodeMalformedSubmission = "malformed_submission"
	CodeInvalidMenu         = "invalid_menu"
	CodeAlreadyVoted        = "already_voted"
	CodePersistenceFailure  = "persistence_failure"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeEmailInUse          = "email_in_use"
	CodeMenuExists          = "menu_exists"
	CodeValidationFailed    = "validation_failed"
	CodeUnauthorized        = "unauthorized"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "not_found"
	CodeRateLimited         = "rate_limited"
	CodeInternal            = "internal_error"
)

// APIResponse is the common envelope for every endpoint.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Code    string `json:"code,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// OK builds a success envelope
func OK(message string, data any) APIResponse {
	if message == "" {
		message = "Operation successful"
	}
	return APIResponse{Success: true, Message: message, Data: data}
}

// Fail builds an error envelope carrying a machine-readable code
func Fail(code, message string) APIResponse {
	return APIResponse{Success: false, Message: message, Code: code}
}

// FailWith builds an error envelope with field-level details
func FailWith(code, message string, errors any) APIResponse {
	return APIResponse{Success: false, Message: message, Code: code, Errors: errors}
}
